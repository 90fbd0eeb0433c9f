package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/bigfive/internal/config"
)

func TestForTUIWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bigfive.log")
	logger, err := ForTUI(config.LogConfig{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	logger.Debug("answer recorded")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"answer recorded"`)
	assert.Contains(t, string(data), `"level":"debug"`)
}

func TestNewLevel(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "warn"}, filepath.Join(t.TempDir(), "x.log"))
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = New(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
}

func TestDefaultLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	p, err := DefaultLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bigfive", "bigfive.log"), p)
}
