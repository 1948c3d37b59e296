package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// loggingConfig controls where and at what level cmd/monument logs, the
// same three knobs SPEC_FULL.md §1 names: level, an optional file path, and
// whether to also mirror to stderr.
type loggingConfig struct {
	Level         string
	FilePath      string
	WriteToStderr bool
}

// defaultLoggingConfig logs info-and-above to stderr only, no file.
func defaultLoggingConfig() loggingConfig {
	return loggingConfig{Level: "info", WriteToStderr: true}
}

// setupLogging builds a slog.Logger from cfg and a cleanup closure that
// closes the log file, if one was opened. Unlike the teacher's
// internal/logging, this has no size-based rotation: a CLI search run is a
// single process lifetime, not a long-lived daemon writing megabytes of
// log, so rotation has nothing to guard against here.
func setupLogging(cfg loggingConfig) (*slog.Logger, func(), error) {
	var (
		output  io.Writer = os.Stderr
		file    *os.File
		cleanup = func() {}
	)

	switch {
	case cfg.FilePath != "" && cfg.WriteToStderr:
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		file = f
		output = io.MultiWriter(f, os.Stderr)
	case cfg.FilePath != "":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		file = f
		output = f
	case !cfg.WriteToStderr:
		output = io.Discard
	}

	if file != nil {
		cleanup = func() { _ = file.Close() }
	}

	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	return slog.New(handler), cleanup, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
