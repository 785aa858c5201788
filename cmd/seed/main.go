package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"vismify/internal/config"
	"vismify/internal/content"
	"vismify/internal/logger"
	"vismify/internal/redis"
	"vismify/internal/repository"
)

// seed copies the embedded catalog into the tools table, keeping display
// order in position, and drops any cached copy.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	cfg := config.Load()

	lg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer lg.Sync() //nolint:errcheck

	site, err := content.Default()
	if err != nil {
		lg.Fatal("failed to load site content", zap.Error(err))
	}

	db, err := repository.New(cfg)
	if err != nil {
		lg.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	tools := repository.NewToolRepository(db.DB())
	for i, tool := range site.Tools {
		if err := tools.Upsert(ctx, tool, i); err != nil {
			lg.Fatal("failed to upsert tool", zap.Int("id", tool.ID), zap.Error(err))
		}
	}
	lg.Info("catalog seeded", zap.Int("tools", len(site.Tools)))

	rdb := redis.New(cfg)
	defer rdb.Close()
	if err := redis.NewCatalogCache(rdb, cfg.Redis.CatalogTTL).Invalidate(ctx); err != nil {
		lg.Warn("failed to invalidate cached catalog", zap.Error(err))
	}
}
