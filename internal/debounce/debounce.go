package debounce

import (
	"sync"
	"time"
)

// DefaultQuiet is the quiet period after the last keystroke before the text
// is emitted.
const DefaultQuiet = 300 * time.Millisecond

// timer is the subset of *time.Timer the coordinator needs. Tests substitute
// manual timers to avoid wall-clock waits.
type timer interface {
	Stop() bool
}

// timerFactory schedules fn after d and returns a cancellable handle.
type timerFactory func(d time.Duration, fn func()) timer

func afterFunc(d time.Duration, fn func()) timer {
	return time.AfterFunc(d, fn)
}

// Coordinator delays emission of search text until input has been quiet for
// the configured period. Each Trigger cancels any pending emission and
// reschedules, so a burst of keystrokes produces exactly one emission
// carrying the final text. Emissions are delivered on C.
type Coordinator struct {
	mu       sync.Mutex
	quiet    time.Duration
	newTimer timerFactory
	pending  timer
	out      chan string
	stopped  bool
}

// New creates a Coordinator with the given quiet period. A non-positive
// period falls back to DefaultQuiet.
func New(quiet time.Duration) *Coordinator {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Coordinator{
		quiet:    quiet,
		newTimer: afterFunc,
		out:      make(chan string, 1),
	}
}

// C returns the channel emissions arrive on.
func (c *Coordinator) C() <-chan string {
	return c.out
}

// Trigger schedules text for emission after the quiet period, cancelling any
// previously scheduled emission.
func (c *Coordinator) Trigger(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	if c.pending != nil {
		c.pending.Stop()
	}
	c.pending = c.newTimer(c.quiet, func() {
		c.emit(text)
	})
}

// Stop cancels any pending emission and prevents future ones. Safe to call
// more than once; after Stop nothing fires into the consumer.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Coordinator) emit(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	c.pending = nil

	// Replace a not-yet-consumed emission rather than blocking the timer
	// goroutine. Only the newest text matters.
	select {
	case <-c.out:
	default:
	}
	c.out <- text
}
