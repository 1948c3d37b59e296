package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggingStderrOnly(t *testing.T) {
	logger, cleanup, err := setupLogging(defaultLoggingConfig())
	require.NoError(t, err)
	require.NotNil(t, logger)
	cleanup() // no-op: no file was opened
}

func TestSetupLoggingWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monument.log")
	logger, cleanup, err := setupLogging(loggingConfig{Level: "debug", FilePath: path, WriteToStderr: false})
	require.NoError(t, err)
	logger.Info("hello")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"), "unrecognised levels default to info")
}
