package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the exporter configuration.
type Config struct {
	Version    string `yaml:"version"`     // dump profile, "1.8" or "1.11"
	Snapshot   string `yaml:"snapshot"`    // snapshot file or go-getter address
	Scheme     string `yaml:"scheme"`      // minecraft-data scheme directory
	OutDir     string `yaml:"out_dir"`     // directory receiving the dump files
	StrictJSON bool   `yaml:"strict_json"` // escape strings in the output
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:  "1.11",
		OutDir:   ".",
		LogLevel: "info",
	}
}

// Load reads a YAML config file. Fields absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["version"] {
		cfg.Version = fromFile.Version
	}
	if !explicitFlags["snapshot"] {
		cfg.Snapshot = fromFile.Snapshot
	}
	if !explicitFlags["scheme"] {
		cfg.Scheme = fromFile.Scheme
	}
	if !explicitFlags["out"] {
		cfg.OutDir = fromFile.OutDir
	}
	if !explicitFlags["strict-json"] {
		cfg.StrictJSON = fromFile.StrictJSON
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
}

// Validate reports configuration errors that would prevent a run.
func (c *Config) Validate() error {
	switch {
	case c.Snapshot == "" && c.Scheme == "":
		return fmt.Errorf("one of snapshot or scheme is required")
	case c.Snapshot != "" && c.Scheme != "":
		return fmt.Errorf("snapshot and scheme are mutually exclusive")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
