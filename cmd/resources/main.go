package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"upath/internal/config"
	dbpostgres "upath/internal/database/postgres"
	"upath/internal/importer"
	"upath/internal/infrastructure/cache"
	"upath/internal/pkg/logger"
)

func main() {
	sourcesPath := flag.String("sources", "sources.yaml", "path to the YAML source definitions")
	workers := flag.Int("workers", 4, "concurrent detail page fetches")
	rate := flag.Int("rate", 3, "detail page requests per second across all workers (negative disables)")
	maxItems := flag.Int("max-items", 50, "detail pages per source")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall import deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log, *sourcesPath, importer.Options{Workers: *workers, RatePerSecond: *rate, MaxItems: *maxItems}, *timeout); err != nil {
		log.Error("resource import failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *logger.Logger, sourcesPath string, opts importer.Options, timeout time.Duration) error {
	sources, err := importer.LoadSources(sourcesPath)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		log.Warn("no sources configured", "path", sourcesPath)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	redis := cache.NewRedis(ctx, cfg.Redis, log)
	defer redis.Close()

	runs, err := importer.New(pool, redis, log, opts).Run(ctx, sources)
	total := 0
	for _, r := range runs {
		total += r.Imported
	}
	log.Info("resource import complete", "sources", len(runs), "imported", total)
	return err
}
