package redis

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/saasbase/pkg/logger"
)

// Connect establishes a connection to a Redis server using cfg.
// It pings the server up to cfg.RetryAttempts times, cfg.RetryInterval apart,
// within cfg.ConnectTimeout. A nil log discards connection events.
//
// Errors: ErrEmptyConnectionURL when no URL is configured,
// ErrFailedToParseRedisConnString for a malformed URL and ErrRedisNotReady
// when every attempt fails.
func Connect(ctx context.Context, cfg Config, log *slog.Logger) (*redis.Client, error) {
	log = logger.OrNop(log).With(logger.Component("Redis"))

	if !cfg.Enabled() {
		return nil, ErrEmptyConnectionURL
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	var lastErr error
	for attempt := 1; attempt <= max(cfg.RetryAttempts, 1); attempt++ {
		client := redis.NewClient(opts)

		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			log.InfoContext(ctx, "Connected to Redis", slog.String("addr", opts.Addr), logger.Attempt(attempt))
			return client, nil
		}
		_ = client.Close()

		log.WarnContext(ctx, "Redis connection attempt failed", logger.Attempt(attempt), logger.Error(lastErr))

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrRedisNotReady, lastErr)
}
