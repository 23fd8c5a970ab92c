package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	"github.com/OCharnyshevich/blockdump/internal/registry"
)

// Artifact is one rendered output file.
type Artifact struct {
	Name string
	Data []byte
}

func (a Artifact) Digest() uint64 {
	return xxhash.Sum64(a.Data)
}

// Artifacts renders the output files in a fixed order: id mapping, blocks,
// then hidden states when the profile has them.
func (r *Result) Artifacts() []Artifact {
	out := []Artifact{
		{Name: r.Profile.IDMappingFile, Data: []byte(jsonArray(r.IDMappings))},
		{Name: r.Profile.BlocksFile, Data: []byte(jsonArray(r.Variants))},
	}
	if r.Profile.HiddenFile != "" {
		out = append(out, Artifact{Name: r.Profile.HiddenFile, Data: []byte(jsonArray(r.Hidden))})
	}
	return out
}

// Write stores every artifact in dir, replacing existing files. A failing
// file does not stop the others from being written.
func (r *Result) Write(dir string) error {
	var errs []error
	for _, a := range r.Artifacts() {
		path := filepath.Join(dir, a.Name)
		if err := os.WriteFile(path, a.Data, 0o644); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", path, err))
		}
	}
	return errors.Join(errs...)
}

// Dump exports snap and writes the artifacts to dir on a best-effort basis:
// write failures are dropped and only the report is returned.
func (e *Exporter) Dump(snap *registry.Snapshot, dir string) Report {
	res := e.Export(snap)
	_ = res.Write(dir)
	return res.Report
}
