package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"go.xesthora.dev/xesthora/internal/config"
	"go.xesthora.dev/xesthora/internal/logging"
)

func TestNew_ParsesValidLevel(t *testing.T) {
	log, err := logging.New(config.Config{LogLevel: "warn", LogFormat: "json"})
	require.NoError(t, err)
	defer log.Sync()

	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestNew_FallsBackToInfoOnUnparseableLevel(t *testing.T) {
	log, err := logging.New(config.Config{LogLevel: "not-a-level", LogFormat: "console"})
	require.NoError(t, err)
	defer log.Sync()

	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
