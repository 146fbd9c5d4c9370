package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	goredis "github.com/redis/go-redis/v9"
)

// ClientOptions configures the Redis connection
type ClientOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewClient connects to Redis and pings it, retrying briefly so the
// server can start alongside Redis.
func NewClient(ctx context.Context, opts ClientOptions, logger *slog.Logger) (*goredis.Client, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})

	err := retry.Do(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return rdb.Ping(pingCtx).Err()
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(time.Second),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("redis ping failed, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}
