package weburl

import "go.uber.org/zap"

// config accumulates the options passed to Parse (spec.md §5, supplemented
// with a diagnostic-logger hook per SPEC_FULL.md §5).
type config struct {
	base   *URL
	logger *zap.Logger
}

// ParseOption configures a single call to Parse.
type ParseOption func(*config)

func newConfig(opts []ParseOption) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithBaseURL resolves the input as a relative reference against base
// (spec.md §4.C "relative" states).
func WithBaseURL(base *URL) ParseOption {
	return func(c *config) { c.base = base }
}

// WithDiagnosticLogger routes non-fatal parse diagnostics (spec.md §7) to
// logger instead of discarding them.
func WithDiagnosticLogger(logger *zap.Logger) ParseOption {
	return func(c *config) { c.logger = logger }
}
