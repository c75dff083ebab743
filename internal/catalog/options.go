package catalog

import "bookstore/internal/config"

// Logger receives catalog diagnostics. *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Option configures a Catalog.
type Option func(*Catalog)

// WithConfig sets the year bounds used by FindByYear.
func WithConfig(cfg config.Config) Option {
	return func(c *Catalog) {
		c.cfg = cfg
	}
}

// WithLogger sets the logger. Rejected additions and removals are reported
// at debug level.
func WithLogger(logger Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}
