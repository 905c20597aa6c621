package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/zephyrtronium/keycalc/internal/config"
)

func TestNew(t *testing.T) {
	cases := []struct {
		cfg     config.LogConfig
		enabled zapcore.Level
		off     zapcore.Level
	}{
		{config.LogConfig{Level: "info"}, zapcore.InfoLevel, zapcore.DebugLevel},
		{config.LogConfig{Level: "debug", Development: true}, zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{config.LogConfig{Level: "error"}, zapcore.ErrorLevel, zapcore.WarnLevel},
	}
	for _, c := range cases {
		logger, err := New(c.cfg)
		require.NoError(t, err, "%+v", c.cfg)
		core := logger.Core()
		assert.True(t, core.Enabled(c.enabled), "%+v: %v disabled", c.cfg, c.enabled)
		assert.False(t, core.Enabled(c.off), "%+v: %v enabled", c.cfg, c.off)
	}
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
