package logger

import (
	"testing"

	"github.com/ilidanrock/ecohome-sub001/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("creates a JSON logger", func(t *testing.T) {
		log, err := New(config.LogConfig{Level: "info", Format: "json", Output: "stdout"})
		require.NoError(t, err)
		require.NotNil(t, log)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("creates a console logger at debug level", func(t *testing.T) {
		log, err := New(config.LogConfig{Level: "debug", Format: "console", Output: "stderr"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("defaults an unknown level to info", func(t *testing.T) {
		log, err := New(config.LogConfig{Level: "verbose", Format: "json", Output: "stdout"})
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("writes to a file output", func(t *testing.T) {
		path := t.TempDir() + "/app.log"
		log, err := New(config.LogConfig{Level: "info", Format: "json", Output: path})
		require.NoError(t, err)
		log.Info("file output works")
		require.NoError(t, log.Sync())
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
		"bogus":   zapcore.InfoLevel,
		"WARN":    zapcore.WarnLevel,
	}
	for input, expected := range cases {
		assert.Equal(t, expected, parseLevel(input), "level %q", input)
	}
}

func TestNewForEnvironment(t *testing.T) {
	t.Run("production", func(t *testing.T) {
		log, err := NewForEnvironment("production")
		require.NoError(t, err)
		require.NotNil(t, log)
	})

	t.Run("development", func(t *testing.T) {
		log, err := NewForEnvironment("development")
		require.NoError(t, err)
		require.NotNil(t, log)
	})
}
