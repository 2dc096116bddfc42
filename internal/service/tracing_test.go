package service

import (
	"context"
	"testing"

	"tastebuds/internal/models"
	"tastebuds/internal/observability"
	"tastebuds/internal/repository"
	"tastebuds/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := observability.Tracer
	observability.Tracer = tp.Tracer("service-test")
	t.Cleanup(func() {
		observability.Tracer = previous
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func endedSpan(t *testing.T, recorder *tracetest.SpanRecorder, name string) sdktrace.ReadOnlySpan {
	t.Helper()
	for _, span := range recorder.Ended() {
		if span.Name() == name {
			return span
		}
	}
	require.Failf(t, "span not recorded", "no ended span named %q", name)
	return nil
}

func TestServiceOperationsRecordSpans(t *testing.T) {
	recorder := recordSpans(t)
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "ana")
	svc := NewCocktailService(repository.NewCocktailRepository(db, nil), repository.NewUserRepository(db))
	ctx := context.Background()

	_, err := svc.CreateCocktail(ctx, CreateRecipeInput{Name: "Negroni", PreparationSteps: "Stir", FlavorProfile: models.FlavorBitter, UserID: user.ID})
	require.NoError(t, err)
	ok := endedSpan(t, recorder, "CocktailService.CreateCocktail")
	assert.Equal(t, codes.Unset, ok.Status().Code)

	_, err = svc.GetCocktail(ctx, 404)
	assertAppErrorCode(t, err, models.CodeNotFound)
	failed := endedSpan(t, recorder, "CocktailService.GetCocktail")
	assert.Equal(t, codes.Error, failed.Status().Code)
	assert.NotEmpty(t, failed.Events(), "error should be recorded as a span event")
}
