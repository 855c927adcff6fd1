package app

import (
	"context"
	"fmt"
	"time"

	"upath/internal/config"
	"upath/internal/database"
	"upath/internal/database/migration"
	dbpostgres "upath/internal/database/postgres"
	"upath/internal/database/seeder"
	"upath/internal/infrastructure/cache"
	"upath/internal/pkg/logger"
	"upath/internal/usecase"
	"upath/internal/ws"
	"upath/migrations"
)

// Container holds the process-wide resources: the pool, the cache client and
// the websocket hub.
type Container struct {
	Config config.Config
	Log    *logger.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub

	stopHub context.CancelFunc
}

func NewContainer(cfg config.Config, log *logger.Logger) (*Container, error) {
	if log == nil {
		log = logger.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Database.RunMigrations {
		applied, err := migration.Runner{FS: migrations.FS}.Run(ctx, pool.SQLDB())
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		log.Info("migrations applied", "count", applied)
	}

	redisCache := cache.NewRedis(ctx, cfg.Redis, log)

	if cfg.Database.RunSeeders {
		inserted, err := seeder.Runner{Seeders: seeder.Defaults(), Log: log}.Run(ctx, pool)
		if err != nil {
			_ = redisCache.Close()
			pool.Close()
			return nil, fmt.Errorf("run seeders: %w", err)
		}
		invalidateSeededLists(ctx, redisCache, inserted, log)
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := ws.NewHub(log)
	go hub.Run(hubCtx)

	return &Container{
		Config:  cfg,
		Log:     log,
		DB:      pool,
		Cache:   redisCache,
		Hub:     hub,
		stopHub: stopHub,
	}, nil
}

type listInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// invalidateSeededLists drops cached reference lists that a seeding pass made
// stale. A cache failure is logged and otherwise ignored; entries expire on
// their own.
func invalidateSeededLists(ctx context.Context, c listInvalidator, inserted map[string]int64, log *logger.Logger) {
	patterns := make([]string, 0, 2)
	if inserted[seeder.GoalsSeeder{}.Name()] > 0 {
		patterns = append(patterns, usecase.GoalsCacheKey)
	}
	if inserted[seeder.ResourcesSeeder{}.Name()] > 0 {
		patterns = append(patterns, usecase.ResourcesCachePrefix+"*")
	}
	for _, p := range patterns {
		if err := c.DeleteByPattern(ctx, p); err != nil {
			log.Warn("cache invalidation after seeding failed", "pattern", p, "error", err)
		}
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
