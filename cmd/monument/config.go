package main

// RunOption customizes a runConfig before the orchestrator starts. As a
// rule, option constructors never panic and ignore zero/invalid inputs,
// the same contract lvlath/builder's BuilderOption documents.
type RunOption func(cfg *runConfig)

// runConfig holds the knobs cmd/monument resolves once from flags/defaults
// before handing a query off to package orchestrator — worker count, the
// search queue limit, log level, and output format (SPEC_FULL.md §1).
type runConfig struct {
	workers    int
	queueLimit int
	logLevel   string
	logFile    string
	format     string
}

// newRunConfig returns a runConfig initialized with defaults, then applies
// each option in order; later options override earlier ones.
func newRunConfig(opts ...RunOption) *runConfig {
	cfg := &runConfig{
		workers:    0, // 0 means "one goroutine per start chunk", see orchestrator.Config
		queueLimit: 10000,
		logLevel:   "info",
		format:     "text",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithWorkers bounds how many sub-graphs search concurrently. A
// non-positive value is a no-op, leaving the default (one per start).
func WithWorkers(n int) RunOption {
	return func(cfg *runConfig) {
		if n > 0 {
			cfg.workers = n
		}
	}
}

// WithQueueLimit bounds the frontier size passed to every worker's
// search.Config.QueueLimit. A non-positive value is a no-op.
func WithQueueLimit(n int) RunOption {
	return func(cfg *runConfig) {
		if n > 0 {
			cfg.queueLimit = n
		}
	}
}

// WithLogLevel sets the minimum slog level ("debug", "info", "warn",
// "error"). An empty string is a no-op.
func WithLogLevel(level string) RunOption {
	return func(cfg *runConfig) {
		if level != "" {
			cfg.logLevel = level
		}
	}
}

// WithLogFile mirrors logging to the given file path in addition to
// stderr. An empty string is a no-op, leaving logging on stderr only.
func WithLogFile(path string) RunOption {
	return func(cfg *runConfig) {
		if path != "" {
			cfg.logFile = path
		}
	}
}

// WithFormat selects the result output format ("text" or "json"). An
// empty string is a no-op.
func WithFormat(format string) RunOption {
	return func(cfg *runConfig) {
		if format != "" {
			cfg.format = format
		}
	}
}
