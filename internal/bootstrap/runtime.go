// Package bootstrap wires the process-wide resources shared by the commands.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tastebuds/internal/cache"
	"tastebuds/internal/config"
	"tastebuds/internal/database"
	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemo fills an empty development database with demo data.
	SeedDemo  bool
	SeedUsers int
}

// Runtime holds the connections a command runs on.
type Runtime struct {
	DB    *gorm.DB
	Redis *redis.Client

	shutdownTracing func(context.Context) error
}

// InitRuntime starts tracing, connects to the database (applying the schema)
// and to Redis, which may come back nil.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*Runtime, error) {
	shutdown, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "tastebuds-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampleRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("tracing init failed: %w", err)
	}

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	rt := &Runtime{DB: db, Redis: cache.NewClient(ctx, cfg.RedisURL), shutdownTracing: shutdown}

	if opts.SeedDemo {
		if err := seedIfEmpty(ctx, cfg, db, opts.SeedUsers); err != nil {
			_ = rt.Close(ctx)
			return nil, fmt.Errorf("demo seeding failed: %w", err)
		}
	}
	return rt, nil
}

func seedIfEmpty(ctx context.Context, cfg *config.Config, db *gorm.DB, users int) error {
	if cfg.Env != "development" {
		return errors.New("demo seeding is only allowed in development")
	}
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		observability.Logger.InfoContext(ctx, "database already has users, skipping demo seed",
			slog.Int64("users", count))
		return nil
	}
	s, err := seed.NewSeeder(db, seed.SeedOptions{Users: users})
	if err != nil {
		return err
	}
	_, err = s.Run(ctx)
	return err
}

// ShutdownTracing flushes pending spans.
func (r *Runtime) ShutdownTracing(ctx context.Context) error {
	if r == nil || r.shutdownTracing == nil {
		return nil
	}
	return r.shutdownTracing(ctx)
}

// Close flushes tracing and closes Redis and the database. Use it only when
// no server owns the connections.
func (r *Runtime) Close(ctx context.Context) error {
	errs := []error{r.ShutdownTracing(ctx)}
	if r.Redis != nil {
		errs = append(errs, r.Redis.Close())
	}
	if r.DB != nil {
		errs = append(errs, database.Close(r.DB))
	}
	return errors.Join(errs...)
}
