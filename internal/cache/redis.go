// Package cache provides the optional Redis layer: a connection helper and a
// JSON cache-aside Store used by the recipe repositories and the admin console.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"tastebuds/internal/observability"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// errorCounter counts failed commands by name. A miss (redis.Nil) is not a failure.
type errorCounter struct{}

func (errorCounter) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (errorCounter) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		countFailure(cmd.Name(), err)
		return err
	}
}

func (errorCounter) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		countFailure("pipeline", err)
		return err
	}
}

func countFailure(command string, err error) {
	if err != nil && !errors.Is(err, redis.Nil) {
		observability.RedisErrorRate.WithLabelValues(command).Inc()
	}
}

// clientOptions accepts either a bare host:port or a redis:// URL.
func clientOptions(addr string) (*redis.Options, error) {
	addr = strings.TrimSpace(addr)
	if strings.Contains(addr, "://") {
		return redis.ParseURL(addr)
	}
	return &redis.Options{Addr: addr}, nil
}

// NewClient connects to addr. It returns nil when addr is empty, invalid or
// unreachable, and the application then runs without a cache.
func NewClient(ctx context.Context, addr string) *redis.Client {
	if strings.TrimSpace(addr) == "" {
		observability.Logger.InfoContext(ctx, "REDIS_URL not set, running without cache")
		return nil
	}

	opts, err := clientOptions(addr)
	if err != nil {
		observability.Logger.WarnContext(ctx, "Invalid REDIS_URL, continuing without cache",
			slog.String("error", err.Error()))
		return nil
	}

	client := redis.NewClient(opts)
	client.AddHook(errorCounter{})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		observability.Logger.WarnContext(ctx, "Redis unreachable, continuing without cache",
			slog.String("addr", opts.Addr), slog.String("error", err.Error()))
		_ = client.Close()
		return nil
	}

	observability.Logger.InfoContext(ctx, "Redis connected", slog.String("addr", opts.Addr), slog.Int("db", opts.DB))
	return client
}
