package logging_test

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/vaultsfyi/sextant/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	// Save and restore the original logger and level
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.NotNil(t, cfg)
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.False(t, cfg.AddCaller)
		assert.Equal(t, "stderr", cfg.Output)
	})

	t.Run("NewLoggerFromConfig parses levels", func(t *testing.T) {
		tests := []struct {
			name  string
			cfg   *logging.Config
			level zerolog.Level
		}{
			{"nil config defaults to info", nil, zerolog.InfoLevel},
			{"debug level", &logging.Config{Level: "debug", Format: "json"}, zerolog.DebugLevel},
			{"warn level", &logging.Config{Level: "warning", Format: "json"}, zerolog.WarnLevel},
			{"error level", &logging.Config{Level: "error", Format: "json"}, zerolog.ErrorLevel},
			{"disabled", &logging.Config{Level: "off", Format: "json"}, zerolog.Disabled},
			{"unknown falls back to info", &logging.Config{Level: "chatty", Format: "json"}, zerolog.InfoLevel},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				logger := logging.NewLoggerFromConfig(tt.cfg)
				assert.Equal(t, tt.level, logger.GetLevel())
			})
		}
	})

	t.Run("json format emits structured output", func(t *testing.T) {
		testLogger := logging.CaptureLoggingForTest(t)

		logging.Info().Str("binding", "go").Msg("configured")

		if !strings.Contains(testLogger.Output(), `"binding":"go"`) {
			t.Errorf("Expected JSON field, got: %s", testLogger.Output())
		}
	})

	t.Run("discard output writes nothing visible", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "info",
			Format: "json",
			Output: "discard",
		})
		logger.Info().Msg("never seen")
	})
}
