package scrollspy

import (
	"sync"
	"time"
)

// debouncer coalesces rapid triggers into one callback per quiet period.
// A single timer is reused: each trigger cancels the pending one and
// reschedules.
type debouncer struct {
	mu    sync.Mutex
	quiet time.Duration
	timer *time.Timer
}

func newDebouncer(quiet time.Duration) *debouncer {
	return &debouncer{quiet: quiet}
}

// Trigger schedules fn to run after the quiet period, cancelling any pending
// run.
func (d *debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, fn)
}

// Stop cancels the pending run, if any.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
