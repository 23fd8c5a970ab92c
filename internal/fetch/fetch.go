// Package fetch downloads snapshots and minecraft-data schemes from any
// location go-getter understands (local paths, http(s), git, s3, gcs).
package fetch

import (
	"context"
	"fmt"
	"os"

	getter "github.com/hashicorp/go-getter"
)

// File downloads a single file from src into the path dst.
func File(ctx context.Context, src, dst string) error {
	return get(ctx, src, dst, getter.ClientModeFile)
}

// Dir downloads a directory tree from src into dst. dst is removed first.
func Dir(ctx context.Context, src, dst string) error {
	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("clean %s: %w", dst, err)
	}
	return get(ctx, src, dst, getter.ClientModeDir)
}

// SchemeURL builds the go-getter address of one minecraft-data version
// directory, e.g. data/pc/1.8 of the PrismarineJS repository.
func SchemeURL(base, platform, version string) string {
	return fmt.Sprintf("git::%s//data/%s/%s", base, platform, version)
}

func get(ctx context.Context, src, dst string, mode getter.ClientMode) error {
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getwd: %w", err)
	}

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: mode,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("fetch %s: %w", src, err)
	}
	return nil
}
