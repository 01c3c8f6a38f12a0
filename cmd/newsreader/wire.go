package main

import (
	"io"

	"newsreader-core/core/interfaces"
	"newsreader-core/core/session"
	"newsreader-core/infrastructure/cache/memory"
	"newsreader-core/infrastructure/cache/redis"
	"newsreader-core/infrastructure/cache/sqlite"
	"newsreader-core/infrastructure/http/standard"
	"newsreader-core/infrastructure/logger/logrus"
	"newsreader-core/infrastructure/metrics/prometheus"
	"newsreader-core/pkg/config"
	newsreader "newsreader-core/sdk"
)

func newLogger(cfg config.LogConfig) (interfaces.Logger, error) {
	return logrus.New(logrus.Options{Level: cfg.Level, Format: cfg.Format})
}

// openStore builds the preference backend. Remote or file backends that fail
// to open fall back to memory so the content commands keep working.
func openStore(cfg config.StoreConfig, logger interfaces.Logger) (interfaces.Cache, io.Closer) {
	switch cfg.Type {
	case "redis":
		store, err := redis.NewRedisCache(cfg.Redis, redis.WithKeyPrefix(cfg.Redis.KeyPrefix))
		if err == nil {
			logger.Info("Using Redis preference store", map[string]interface{}{
				"address": cfg.Redis.Address,
				"prefix":  cfg.Redis.KeyPrefix,
			})
			return store, store
		}
		logger.Error("Failed to open Redis store, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		store, err := sqlite.NewSQLiteCache(cfg.SQLite.Path)
		if err == nil {
			logger.Info("Using SQLite preference store", map[string]interface{}{"path": cfg.SQLite.Path})
			return store, store
		}
		logger.Error("Failed to open SQLite store, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Debug("Using memory preference store", nil)
	return memory.NewMemoryCache(cfg.Memory.CleanupInterval), nil
}

func newClient(cfg *config.Config, logger interfaces.Logger, store interfaces.Cache, metrics *prometheus.Metrics) (*newsreader.Client, error) {
	return newsreader.NewClient(
		newsreader.WithBaseURL(cfg.API.BaseURL),
		newsreader.WithAPIKey(cfg.API.APIKey),
		newsreader.WithHTTPClient(standard.NewStandardHTTPClient(cfg.API.Timeout)),
		newsreader.WithLogger(logger),
		newsreader.WithPreferences(store),
		newsreader.WithMetrics(metrics),
		newsreader.WithResolverWindow(cfg.Resolver.WindowSize),
		newsreader.WithHomeConcurrency(cfg.Home.Concurrency),
		newsreader.WithSessions(session.ManagerConfig{
			Debounce:         cfg.Session.Debounce,
			AuthorsPageSize:  cfg.Session.AuthorsPageSize,
			ArticlesPageSize: cfg.Session.ArticlesPageSize,
			CommentsPageSize: cfg.Session.CommentsPageSize,
		}),
	)
}
