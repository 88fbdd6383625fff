package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Defaults tuned for controller reads: a couple of quick attempts rather
// than a long siege, since an operator is waiting at the terminal. The
// delay doubles per attempt up to maxDelay.
const (
	defaultMaxRetries   = 2
	defaultInitialDelay = 500 * time.Millisecond
	maxDelay            = 10 * time.Second
)

// Config holds retry tuning.
type Config struct {
	MaxRetries   int
	InitialDelay time.Duration
}

// Option adjusts a Config.
type Option func(*Config)

// WithMaxRetries sets how many times a failed operation is reattempted.
func WithMaxRetries(n int) Option {
	return func(c *Config) {
		c.MaxRetries = n
	}
}

// WithInitialDelay sets the delay before the first reattempt.
func WithInitialDelay(d time.Duration) Option {
	return func(c *Config) {
		c.InitialDelay = d
	}
}

// WithExponentialBackoff runs operation, reattempting transient failures
// with doubling delays. Errors wrapped with Fatal are returned
// immediately, unwrapped; context cancellation aborts the wait between
// attempts.
func WithExponentialBackoff(ctx context.Context, operation func() error, opts ...Option) error {
	cfg := &Config{
		MaxRetries:   defaultMaxRetries,
		InitialDelay: defaultInitialDelay,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	delay := cfg.InitialDelay
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		var fatal *FatalError
		if errors.As(err, &fatal) {
			return fatal.Err
		}

		if attempt < cfg.MaxRetries {
			select {
			case <-ctx.Done():
				return fmt.Errorf("giving up after %d attempt(s): %w", attempt+1, ctx.Err())
			case <-time.After(delay):
				delay *= 2
				if delay > maxDelay {
					delay = maxDelay
				}
			}
		}
	}

	return fmt.Errorf("failed after %d attempt(s): %w", cfg.MaxRetries+1, lastErr)
}

// FatalError marks an error as non-retryable.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal marks an error as non-retryable. A nil error stays nil.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal reports whether an error carries the non-retryable marker.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}
