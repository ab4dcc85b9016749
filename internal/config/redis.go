package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis returns a redis client, or nil when REDIS_ADDR is unset.
// An unreachable server is logged but not fatal; lookups then skip the cache.
func ConnectRedis(cfg *Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		zap.L().Info("redis disabled (REDIS_ADDR not set)")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("unable to reach redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	} else {
		zap.L().Info("✅ Redis connected", zap.String("addr", cfg.Redis.Addr))
	}

	return client
}
