package search

import (
	"sync"
	"time"
)

// DefaultQuietPeriod is how long input must stay unchanged before search work
// runs.
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer delays work until a quiet period has elapsed since the latest
// trigger. Each Trigger cancels the pending timer, so only the last call
// within the window fires. Note that only the pending timer is cancelable;
// once fn has started it runs to completion.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer builds a Debouncer with the given quiet period. A zero or
// negative delay falls back to DefaultQuietPeriod.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, replacing any pending call.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
