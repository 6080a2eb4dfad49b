package app

import (
	"go-ems/internal/config"
	"go-ems/internal/employee"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/middleware"
	"go-ems/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BuildApp connects the stores, migrates the schema and registers the API routes on router.
// The returned cleanup closes every connection it opened.
func BuildApp(router *gin.Engine, cfg *config.API, logger *zap.Logger) (func(), error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if err := migrate(gormDB); err != nil {
		sqlDB.Close()
		return nil, err
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5, logger)
		if err != nil {
			// the API still works without its cache
			logger.Warn("redis unavailable, continuing without cache", zap.Error(err))
			rdb = nil
		} else {
			logger.Info("redis connection established")
		}
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.Timeout(cfg.Server.RequestTimeout),
	)

	registerModules(router, sqlDB, gormDB, rdb, cfg)

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
		_ = sqlDB.Close()
	}
	return cleanup, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&employee.Employee{}, &kafka.OutboxTable{})
}
