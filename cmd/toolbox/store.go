package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/content-toolbox/internal/config"
	"github.com/KirkDiggler/content-toolbox/internal/store"
)

func noClose() error { return nil }

// openStore opens the configured backend. Anything that cannot be opened
// falls back to the in-memory store so the toolbox stays usable.
func openStore(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (store.Store, func() error) {
	fallback := func(err error) (store.Store, func() error) {
		logger.Warn().Err(err).Str("store", string(cfg.Store.Kind)).Msg("Falling back to in-memory store")
		return store.NewMemoryStore(cfg.Store.MemoryQuota), noClose
	}

	switch cfg.Store.Kind {
	case config.StoreFile:
		s, err := store.NewFileStore(&store.FileStoreConfig{
			Dir:      cfg.Store.DataDir,
			Compress: cfg.Store.Compress,
		})
		if err != nil {
			return fallback(err)
		}
		logger.Debug().Str("dir", cfg.Store.DataDir).Msg("Using file store")
		return s, noClose

	case config.StoreSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Store.SQLitePath), 0o755); err != nil {
			return fallback(err)
		}
		s, err := store.OpenSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return fallback(err)
		}
		logger.Debug().Str("path", cfg.Store.SQLitePath).Msg("Using SQLite store")
		return s, s.Close

	case config.StoreRedis:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return fallback(err)
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return fallback(err)
		}
		logger.Debug().Str("addr", opts.Addr).Msg("Using Redis store")
		return store.NewRedisStore(&store.RedisConfig{
			Client: client,
			Prefix: cfg.Redis.Prefix,
		}), client.Close

	default:
		return store.NewMemoryStore(cfg.Store.MemoryQuota), noClose
	}
}
