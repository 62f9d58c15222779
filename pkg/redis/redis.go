package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

func NewClient(cfg Config, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Cache is fail-open: an unreachable Redis must not keep the API from
	// starting, reads fall through to the database.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Warn("Redis unavailable, cached reads will fall through to the database",
			zap.String("addr", cfg.Addr),
			zap.Error(err))
		return rdb, nil
	}

	logger.Info("Successfully connected to Redis", zap.String("addr", cfg.Addr))
	return rdb, nil
}
