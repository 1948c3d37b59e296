package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRunConfigDefaults(t *testing.T) {
	cfg := newRunConfig()
	assert.Equal(t, 0, cfg.workers)
	assert.Equal(t, 10000, cfg.queueLimit)
	assert.Equal(t, "info", cfg.logLevel)
	assert.Equal(t, "", cfg.logFile)
	assert.Equal(t, "text", cfg.format)
}

func TestRunOptionsApplyInOrder(t *testing.T) {
	cfg := newRunConfig(
		WithWorkers(4),
		WithQueueLimit(500),
		WithLogLevel("debug"),
		WithLogFile("/tmp/monument.log"),
		WithFormat("json"),
	)
	assert.Equal(t, 4, cfg.workers)
	assert.Equal(t, 500, cfg.queueLimit)
	assert.Equal(t, "debug", cfg.logLevel)
	assert.Equal(t, "/tmp/monument.log", cfg.logFile)
	assert.Equal(t, "json", cfg.format)
}

func TestRunOptionsIgnoreZeroValues(t *testing.T) {
	cfg := newRunConfig(WithWorkers(0), WithQueueLimit(-1), WithLogLevel(""), WithLogFile(""), WithFormat(""))
	assert.Equal(t, 0, cfg.workers)
	assert.Equal(t, 10000, cfg.queueLimit, "non-positive queue limit is a no-op")
	assert.Equal(t, "info", cfg.logLevel)
	assert.Equal(t, "text", cfg.format)
}
