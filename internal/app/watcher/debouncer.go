package watcher

import (
	"sort"
	"sync"
	"time"
)

// Debouncer collects paths and reports them once the stream has been quiet for a delay
type Debouncer interface {
	Trigger(path string)
	Stop()
}

type debouncer struct {
	mu       sync.Mutex
	delay    time.Duration
	callback func(paths []string)
	timer    *time.Timer
	pending  map[string]struct{}
	stopped  bool
}

// NewDebouncer creates a debouncer that calls back with the sorted, unique paths
func NewDebouncer(delay time.Duration, callback func(paths []string)) Debouncer {
	return &debouncer{
		delay:    delay,
		callback: callback,
		pending:  make(map[string]struct{}),
	}
}

// Trigger records a path and restarts the quiet period
func (d *debouncer) Trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending[path] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, d.flush)
}

// Stop cancels any pending callback; later triggers are ignored
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	clear(d.pending)
}

func (d *debouncer) flush() {
	d.mu.Lock()

	if d.stopped || len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}

	paths := make([]string, 0, len(d.pending))
	for p := range d.pending {
		paths = append(paths, p)
	}

	clear(d.pending)
	d.timer = nil

	d.mu.Unlock()

	sort.Strings(paths)
	d.callback(paths)
}
