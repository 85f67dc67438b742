package cache

import (
	"context"

	"gig-negotiation/internal/pkg/config"
	"gig-negotiation/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// Connect opens a Redis client and verifies the connection. Callers that
// treat Redis as optional should check cfg.Redis.Enabled() first.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}
	cleanup := func() { _ = client.Close() }
	return client, cleanup, nil
}
