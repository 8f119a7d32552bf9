package logger

import (
	"io"
	"log/slog"
	"os"
)

type config struct {
	writer     io.Writer
	level      slog.Level
	extractors []ContextExtractor
	sentry     *SentryConfig
}

// Option configures the logger during construction.
type Option func(*config)

// WithLevel sets the minimum level emitted. Defaults to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithWriter redirects output away from stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.writer = w
		}
	}
}

// WithExtractors appends context extractors; nil extractors are dropped.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithSentry enables Sentry forwarding. An empty DSN leaves the logger
// stdout-only, so the option is safe to apply unconditionally.
func WithSentry(cfg SentryConfig) Option {
	return func(c *config) {
		c.sentry = &cfg
	}
}

// New creates a JSON-formatted logger.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		writer: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handler := slog.Handler(slog.NewJSONHandler(cfg.writer, &slog.HandlerOptions{
		Level: cfg.level,
	}))

	if cfg.sentry != nil {
		handler = attachSentry(handler, *cfg.sentry)
	}

	return slog.New(newContextHandler(handler, cfg.extractors))
}

// NewDiscard creates a logger that drops all output. Use it as a default
// when logging is not configured.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
