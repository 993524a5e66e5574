package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaultsfyi/sextant/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("WithBinding adds binding to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithBinding(ctx, "python")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithSuite adds suite to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithSuite(ctx, "parameters")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithOperation adds operation to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithOperation(ctx, "get_benchmarks")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithFields adds custom fields to context", func(t *testing.T) {
		ctx := context.Background()
		fields := map[string]interface{}{
			"network": "mainnet",
			"asset":   "USDC",
		}
		ctx = logging.WithFields(ctx, fields)

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("FromContext returns default for empty context", func(t *testing.T) {
		logger := logging.FromContext(context.Background())
		assert.NotNil(t, logger)
		assert.Equal(t, logging.Default(), logger)
	})

	t.Run("Ctx extracts logger from context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithBinding(ctx, "javascript")

		logger := logging.Ctx(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithRunID stores and retrieves run ID", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithRunID(ctx, "run-123")

		assert.Equal(t, "run-123", logging.RunID(ctx))
	})

	t.Run("RunID returns empty without context value", func(t *testing.T) {
		assert.Equal(t, "", logging.RunID(context.Background()))
	})

	t.Run("WithError is a no-op for nil error", func(t *testing.T) {
		ctx := context.Background()
		assert.Equal(t, ctx, logging.WithError(ctx, nil))
	})
}

func TestContextLoggerCapturesFields(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithBinding(ctx, "go")
	ctx = logging.WithSuite(ctx, "vocabulary")

	logging.Ctx(ctx).Info().Msg("checking networks")

	testLogger.AssertContains(t, "checking networks")
	testLogger.AssertContains(t, `"binding":"go"`)
	testLogger.AssertContains(t, `"suite":"vocabulary"`)
}
