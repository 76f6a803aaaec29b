package timer

import "time"

// Now returns the current Unix time in seconds.
func Now() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// Timer accumulates elapsed time over start/stop intervals.
type Timer struct {
	clock   func() time.Time
	started time.Time
	total   time.Duration
	running bool
}

// New returns an idle timer with zero accumulated time.
func New(opts ...Option) *Timer {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Timer{clock: cfg.Clock}
}

// Start opens a new interval.
func (t *Timer) Start() error {
	if t.running {
		return ErrAlreadyRunning
	}
	t.started = t.clock()
	t.running = true

	return nil
}

// Stop closes the current interval and adds it to the total.
func (t *Timer) Stop() error {
	if !t.running {
		return ErrNotRunning
	}
	t.total += t.clock().Sub(t.started)
	t.running = false

	return nil
}

// Running reports whether an interval is open.
func (t *Timer) Running() bool { return t.running }

// Elapsed returns the accumulated time, including the open interval.
func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return t.total + t.clock().Sub(t.started)
	}

	return t.total
}

// Poll returns Elapsed in seconds.
func (t *Timer) Poll() float64 {
	return t.Elapsed().Seconds()
}

// Add credits d to the total without touching the open interval.
func (t *Timer) Add(d time.Duration) {
	t.total += d
}

// Reset clears the total and closes any open interval without counting it.
func (t *Timer) Reset() {
	t.total = 0
	t.running = false
}

// Scope starts the timer and returns a handle that stops it on Close.
func (t *Timer) Scope() (*Scope, error) {
	if err := t.Start(); err != nil {
		return nil, err
	}

	return &Scope{t: t}, nil
}

// Scope is an open interval of a Timer.
type Scope struct {
	t      *Timer
	closed bool
}

// Close stops the owning timer. Closing twice is a no-op.
func (s *Scope) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	return s.t.Stop()
}
