package client

import (
	"sync"
	"time"
)

const DefaultDebounceWait = 500 * time.Millisecond

// Debouncer calls fn with the last value passed to Trigger once no new value
// arrived for the wait window.
type Debouncer struct {
	wait  time.Duration
	fn    func(string)
	mux   sync.Mutex
	timer *time.Timer
	seq   uint64
}

func NewDebouncer(wait time.Duration, fn func(string)) *Debouncer {
	if wait <= 0 {
		wait = DefaultDebounceWait
	}
	return &Debouncer{wait: wait, fn: fn}
}

func (d *Debouncer) Trigger(value string) {
	d.mux.Lock()
	defer d.mux.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.wait, func() {
		d.mux.Lock()
		current := d.seq == seq
		d.mux.Unlock()
		if current {
			d.fn(value)
		}
	})
}

// Stop drops any pending call.
func (d *Debouncer) Stop() {
	d.mux.Lock()
	defer d.mux.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
