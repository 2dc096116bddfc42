package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tastebuds/internal/featureflags"
	"tastebuds/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextMiddlewarePropagatesIDs(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(ContextMiddleware())

	var gotRequestID, gotCorrelation string
	app.Get("/", func(c *fiber.Ctx) error {
		gotRequestID, _ = c.UserContext().Value(observability.RequestIDKey).(string)
		gotCorrelation = CorrelationID(c.UserContext())
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CorrelationHeader, "abc-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "abc-123", gotCorrelation)
	assert.Equal(t, "abc-123", resp.Header.Get(CorrelationHeader))
}

func TestContextMiddlewareGeneratesCorrelationID(t *testing.T) {
	app := fiber.New()
	app.Use(ContextMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(CorrelationHeader), 36)
}

func TestAdminKeyRequired(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		header string
		status int
	}{
		{"matching key", "s3cret", "s3cret", fiber.StatusOK},
		{"wrong key", "s3cret", "nope", fiber.StatusUnauthorized},
		{"missing key", "s3cret", "", fiber.StatusUnauthorized},
		{"disabled console", "", "", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/admin", AdminKeyRequired(tt.secret), func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set(AdminKeyHeader, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestFeatureGateBucketsByClientIP(t *testing.T) {
	flags, err := featureflags.Parse("legacy_routes=50%")
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ProxyHeader: fiber.HeaderXForwardedFor})
	app.Get("/", FeatureGate(flags, featureflags.LegacyRoutes), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	var admitted, refused int
	for i := 1; i <= 100; i++ {
		ip := fmt.Sprintf("10.0.0.%d", i)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, ip)
		resp, err := app.Test(req)
		require.NoError(t, err)
		_ = resp.Body.Close()

		want := http.StatusNotFound
		if flags.EnabledFor(featureflags.LegacyRoutes, ip) {
			want = http.StatusOK
			admitted++
		} else {
			refused++
		}
		assert.Equal(t, want, resp.StatusCode, ip)
	}
	assert.NotZero(t, admitted)
	assert.NotZero(t, refused)
}

func TestTracingMiddlewareSetsTraceHeader(t *testing.T) {
	app := fiber.New()
	app.Use(TracingMiddleware())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelForStatus(fiber.StatusOK, nil))
	assert.Equal(t, slog.LevelWarn, levelForStatus(fiber.StatusNotFound, nil))
	assert.Equal(t, slog.LevelError, levelForStatus(fiber.StatusInternalServerError, nil))
	assert.Equal(t, slog.LevelError, levelForStatus(fiber.StatusOK, assert.AnError))
}

func TestInitMetricsIsIdempotent(t *testing.T) {
	first := InitMetrics("tastebuds-test")
	second := InitMetrics("tastebuds-test")
	assert.Same(t, first, second)
}
