package app

import (
	"fmt"

	"go-attendo/config"
	"go-attendo/internal/kvstore"
	"go-attendo/internal/notifier"
	"go-attendo/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// backend is the storage picked by store.driver.
type backend struct {
	store kvstore.Store
	queue notifier.Queue
	rdb   *redis.Client
	close func()
}

func openBackend(cfg *config.Config, logger *zap.Logger) (*backend, error) {
	switch cfg.Store.Driver {
	case "memory":
		logger.Warn("using in-memory store, data is lost on restart")
		return &backend{
			store: kvstore.NewMemoryStore(),
			queue: notifier.NewMemoryQueue(),
			close: func() {},
		}, nil

	case "redis":
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis)
		if err != nil {
			return nil, err
		}
		logger.Info("redis connection established")
		return &backend{
			store: kvstore.NewRedisStore(rdb),
			queue: notifier.NewRedisQueue(rdb),
			rdb:   rdb,
			close: func() { _ = rdb.Close() },
		}, nil

	case "postgres":
		gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, err
		}
		if err := kvstore.RunMigrations(sqlDB, logger); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		logger.Info("database connection established")
		return &backend{
			store: kvstore.NewGormStore(gormDB),
			queue: notifier.NewSQLQueue(sqlDB),
			close: func() { _ = sqlDB.Close() },
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// BuildApp wires storage, services and routes onto router.
// The returned func releases the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	be, err := openBackend(cfg, logger.Named("app"))
	if err != nil {
		return nil, err
	}

	mods, err := newModules(cfg, be, logger)
	if err != nil {
		be.close()
		return nil, err
	}
	registerRoutes(router, cfg, mods, be.rdb, logger)

	return be.close, nil
}
