package logger

import (
	"career_compass_backend/internal/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolveLevel(t *testing.T) {
	cases := []struct {
		mode, level string
		want        zap.AtomicLevel
	}{
		{"debug", "", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"release", "", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"release", "warn", zap.NewAtomicLevelAt(zap.WarnLevel)},
		{"debug", "nonsense", zap.NewAtomicLevelAt(zap.DebugLevel)},
	}
	for _, tc := range cases {
		cfg := &config.Config{Server: config.ServerConfig{Mode: tc.mode}, Log: config.LogConfig{Level: tc.level}}
		assert.Equal(t, tc.want.Level(), resolveLevel(cfg), "mode=%s level=%s", tc.mode, tc.level)
	}
}

func TestInitLoggerWritesJSONFile(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	file := filepath.Join(t.TempDir(), "app.log")
	InitLogger(&config.Config{
		Server: config.ServerConfig{Mode: "release"},
		Log:    config.LogConfig{File: file, MaxSizeMB: 1},
	})

	Log.Debug("hidden below info")
	Log.Info("session expired", zap.Uint("user_id", 7))
	require.NoError(t, Log.Sync())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"session expired"`)
	assert.Contains(t, string(data), `"service":"career-compass"`)
	assert.Contains(t, string(data), `"user_id":7`)
	assert.NotContains(t, string(data), "hidden below info")
}
