package platform

import (
	"log/slog"
	"time"
)

// options holds the internal configuration for an Engine.
type options struct {
	logger       *slog.Logger
	strict       bool
	strictYAML   bool
	debounce     time.Duration
	errorHandler func(error)
}

// Option defines a functional option for configuring an Engine.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:     nil, // discard
		strict:     false,
		strictYAML: true,
		debounce:   50 * time.Millisecond,
	}
}

// WithLogger sets the logger for the engine and its components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStrict stops a run at the first call whose result does not match.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}

// WithStrictYAML controls whether unknown keys in scenario files are rejected.
// Enabled by default.
func WithStrictYAML(strict bool) Option {
	return func(o *options) {
		o.strictYAML = strict
	}
}

// WithWatchDebounce sets how long Watch waits for a burst of file events to settle.
func WithWatchDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithWatcherErrorHandler registers a callback for errors raised inside the Watch loop,
// which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
