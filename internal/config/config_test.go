package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockdump.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.8\"\nscheme: ./scheme/pc-1.8\nstrict_json: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.8", cfg.Version)
	assert.Equal(t, "./scheme/pc-1.8", cfg.Scheme)
	assert.True(t, cfg.StrictJSON)
	assert.Equal(t, ".", cfg.OutDir, "unset fields keep defaults")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestMerge_ExplicitFlagsWin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Version = "1.8"
	cfg.OutDir = "/tmp/out"

	fromFile := DefaultConfig()
	fromFile.Version = "1.11"
	fromFile.OutDir = "dumps"
	fromFile.Snapshot = "snap.json"

	Merge(cfg, fromFile, map[string]bool{"version": true})

	assert.Equal(t, "1.8", cfg.Version)
	assert.Equal(t, "dumps", cfg.OutDir)
	assert.Equal(t, "snap.json", cfg.Snapshot)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate())

	cfg.Snapshot = "snap.json"
	assert.NoError(t, cfg.Validate())

	cfg.Scheme = "scheme"
	assert.Error(t, cfg.Validate())

	cfg.Scheme = ""
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}

func TestLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}
