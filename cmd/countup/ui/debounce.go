package ui

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of events into one call
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// NewDebouncer creates a new debouncer with the specified duration
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
	}
}

// Debounce executes the function after the debounce duration has elapsed
// without any new calls. Rapid successive calls reset the timer.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel cancels any pending debounced function call
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}


// Throttle lets at most one event through per window; events inside the
// window are dropped, not deferred.
type Throttle struct {
	limit time.Duration
	last  time.Time
}

// NewThrottle creates a throttle with the given window
func NewThrottle(limit time.Duration) *Throttle {
	return &Throttle{limit: limit}
}

// Allow reports whether an event at now may run, and if so opens a new window.
func (t *Throttle) Allow(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) < t.limit {
		return false
	}
	t.last = now
	return true
}
