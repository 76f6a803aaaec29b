package timer

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors.
var (
	// ErrInvalidState is the parent of every state transition error.
	ErrInvalidState = errors.New("timer: invalid state")

	// ErrAlreadyRunning is returned by Start and Scope on a running timer.
	ErrAlreadyRunning = fmt.Errorf("%w: already running", ErrInvalidState)

	// ErrNotRunning is returned by Stop on an idle timer.
	ErrNotRunning = fmt.Errorf("%w: not running", ErrInvalidState)
)

// Options configures a Timer.
type Options struct {
	// Clock returns the current time. Default is time.Now.
	Clock func() time.Time
}

// Option mutates Options.
type Option func(*Options)

// WithClock replaces the time source, typically with a fake in tests.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

// DefaultOptions returns the wall-clock configuration.
func DefaultOptions() Options {
	return Options{Clock: time.Now}
}
