package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"promo-ledger/internal/config/configs"
)

// NewRedisClient connects to Redis for the withdrawal-limit counters.
// The client is pinged with a short timeout; a connection failure is
// returned so the caller can decide whether to run without limits.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
