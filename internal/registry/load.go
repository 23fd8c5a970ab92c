package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/muhammadmuzzammil1998/jsonc"

	"github.com/OCharnyshevich/blockdump/internal/fetch"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Load reads a snapshot from src. src is either a local file or a go-getter
// address; remote snapshots are downloaded to a temporary directory first.
func Load(ctx context.Context, src string) (*Snapshot, error) {
	path := src
	if _, err := os.Stat(src); err != nil {
		tmp, err := os.MkdirTemp("", "blockdump-*")
		if err != nil {
			return nil, fmt.Errorf("create temp dir: %w", err)
		}
		defer os.RemoveAll(tmp)

		path = filepath.Join(tmp, "snapshot")
		if err := fetch.File(ctx, src, path); err != nil {
			return nil, err
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	snap, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return snap, nil
}

// Decode parses a snapshot document. Gzip input is detected by its magic
// bytes; comments are allowed.
func Decode(raw []byte) (*Snapshot, error) {
	if bytes.HasPrefix(raw, gzipMagic) {
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer zr.Close()

		raw, err = io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
	}

	var snap Snapshot
	if err := json.Unmarshal(jsonc.ToJSON(raw), &snap); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return &snap, nil
}
