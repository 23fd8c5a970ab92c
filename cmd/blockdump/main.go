package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/OCharnyshevich/blockdump/internal/config"
	"github.com/OCharnyshevich/blockdump/internal/export"
	"github.com/OCharnyshevich/blockdump/internal/registry"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "path to a YAML config file")
	flag.StringVar(&cfg.Version, "version", cfg.Version, "dump layout: "+strings.Join(export.RegisteredVersions(), ", "))
	flag.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "registry snapshot file or go-getter address")
	flag.StringVar(&cfg.Scheme, "scheme", cfg.Scheme, "minecraft-data scheme directory (e.g. ./scheme/pc-1.8)")
	flag.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	flag.BoolVar(&cfg.StrictJSON, "strict-json", cfg.StrictJSON, "escape strings so the output is valid JSON")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			color.Red("config: %v", err)
			os.Exit(1)
		}
		explicit := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	if err := cfg.Validate(); err != nil {
		color.Red("config: %v", err)
		flag.Usage()
		os.Exit(1)
	}

	level, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("dump failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	profile, err := export.Lookup(cfg.Version)
	if err != nil {
		return err
	}

	var snap *registry.Snapshot
	if cfg.Snapshot != "" {
		log.Info("loading snapshot", "src", cfg.Snapshot)
		snap, err = registry.Load(ctx, cfg.Snapshot)
	} else {
		log.Info("loading scheme", "dir", cfg.Scheme)
		snap, err = registry.FromPrismarine(cfg.Scheme)
	}
	if err != nil {
		return err
	}
	log.Info("registry loaded", "version", snap.Version, "blocks", len(snap.Blocks))

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return err
	}

	exp := export.New(profile, export.WithLogger(log), export.WithStrictJSON(cfg.StrictJSON))
	res := exp.Export(snap)
	if err := res.Write(cfg.OutDir); err != nil {
		return err
	}

	printSummary(res)
	return nil
}

func printSummary(res *export.Result) {
	r := res.Report
	color.Green("dumped %d blocks for %s: %d variants, %d id mappings, %d hidden states",
		r.Blocks, r.Version, r.Variants, r.IDMappings, r.Hidden)

	for _, a := range res.Artifacts() {
		color.Blue("  %-26s %8d bytes  xxh64 %016x", a.Name, len(a.Data), a.Digest())
	}

	if len(r.Skips) == 0 {
		return
	}
	color.Yellow("%d skipped units:", len(r.Skips))
	for _, s := range r.Skips {
		if s.Meta < 0 {
			color.Yellow("  %s (%d) %s: %s", s.Block, s.BlockID, s.Stage, s.Reason)
			continue
		}
		color.Yellow("  %s (%d) %s %d: %s", s.Block, s.BlockID, s.Stage, s.Meta, s.Reason)
	}
}
