package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/OCharnyshevich/blockdump/internal/fetch"
)

func main() {
	var (
		base     = flag.String("base", "https://github.com/PrismarineJS/minecraft-data.git", "base url")
		platform = flag.String("platform", "pc", "platform of schemes")
		ver      = flag.String("version", "1.8", "version of schemes")
		out      = flag.String("o", "./scheme", "output dir path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *out == "" || *platform == "" || *ver == "" {
		log.Error("-o, -platform and -version are required")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	path := filepath.Join(*out, fmt.Sprintf("%s-%s", *platform, *ver))
	log.Info("start downloading scheme", "path", path)

	// https://github.com/PrismarineJS/minecraft-data/tree/master/data/pc/1.8
	if err := fetch.Dir(ctx, fetch.SchemeURL(*base, *platform, *ver), path); err != nil {
		log.Error("download failed", "error", err)
		os.Exit(1)
	}

	log.Info("done downloading scheme", "path", path)
}
