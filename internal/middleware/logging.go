// Package middleware provides request-scoped logging, tracing, metrics and access control for the HTTP layer.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"tastebuds/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CorrelationHeader carries a caller-supplied correlation id across services.
const CorrelationHeader = "X-Correlation-ID"

// ContextMiddleware copies the request id and a correlation id into the
// request's user context so loggers deep in the service layer can see them.
// An incoming X-Correlation-ID is kept, otherwise a new one is minted.
func ContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			ctx = context.WithValue(ctx, observability.RequestIDKey, rid)
		}

		correlationID := c.Get(CorrelationHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		ctx = context.WithValue(ctx, observability.CorrelationIDKey, correlationID)
		c.Set(CorrelationHeader, correlationID)

		c.SetUserContext(ctx)
		return c.Next()
	}
}

// CorrelationID returns the correlation id stored by ContextMiddleware, if any.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(observability.CorrelationIDKey).(string)
	return id
}

// StructuredLogger logs one record per request. Server errors log at error
// level and client errors at warn.
func StructuredLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		attrs := []slog.Attr{
			slog.Int("status", status),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.String("ip", c.IP()),
			slog.Duration("latency", time.Since(start)),
			slog.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		}
		msg := "request processed"
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
			msg = "request failed"
		}

		observability.Logger.LogAttrs(c.UserContext(), levelForStatus(status, err), msg, attrs...)
		return err
	}
}

func levelForStatus(status int, err error) slog.Level {
	switch {
	case err != nil || status >= fiber.StatusInternalServerError:
		return slog.LevelError
	case status >= fiber.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
