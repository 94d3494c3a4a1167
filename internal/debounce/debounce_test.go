package debounce

import (
	"testing"
	"time"
)

// manualTimer records scheduling and fires only when the test says so.
type manualTimer struct {
	fn      func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

func (t *manualTimer) fire() {
	if !t.stopped {
		t.fn()
	}
}

func newManualCoordinator(t *testing.T) (*Coordinator, *[]*manualTimer) {
	t.Helper()
	c := New(DefaultQuiet)
	timers := &[]*manualTimer{}
	c.newTimer = func(d time.Duration, fn func()) timer {
		if d != DefaultQuiet {
			t.Fatalf("scheduled delay = %v, want %v", d, DefaultQuiet)
		}
		mt := &manualTimer{fn: fn}
		*timers = append(*timers, mt)
		return mt
	}
	return c, timers
}

func TestCoordinator_BurstEmitsOnlyLastText(t *testing.T) {
	c, timers := newManualCoordinator(t)

	c.Trigger("f")
	c.Trigger("fe")
	c.Trigger("fer")
	c.Trigger("fern")

	if len(*timers) != 4 {
		t.Fatalf("scheduled %d timers, want 4", len(*timers))
	}
	for _, mt := range (*timers)[:3] {
		if !mt.stopped {
			t.Fatal("superseded timer was not cancelled")
		}
	}

	// Only the last timer is live; fire everything to prove the cancelled
	// ones stay silent.
	for _, mt := range *timers {
		mt.fire()
	}

	select {
	case got := <-c.C():
		if got != "fern" {
			t.Fatalf("emitted %q, want %q", got, "fern")
		}
	default:
		t.Fatal("no emission after quiet period elapsed")
	}

	select {
	case got := <-c.C():
		t.Fatalf("unexpected second emission %q", got)
	default:
	}
}

func TestCoordinator_StopCancelsPendingEmission(t *testing.T) {
	c, timers := newManualCoordinator(t)

	c.Trigger("fic")
	c.Stop()

	if last := (*timers)[len(*timers)-1]; !last.stopped {
		t.Fatal("Stop did not cancel the pending timer")
	}

	// Even a racing timer that already fired must not reach the consumer.
	for _, mt := range *timers {
		mt.fn()
	}
	select {
	case got := <-c.C():
		t.Fatalf("emission %q after Stop", got)
	default:
	}

	c.Trigger("post-stop")
	if len(*timers) != 1 {
		t.Fatalf("Trigger after Stop scheduled a timer, want none")
	}
}

func TestCoordinator_NewestEmissionReplacesUnconsumed(t *testing.T) {
	c, timers := newManualCoordinator(t)

	c.Trigger("old")
	(*timers)[0].fire()
	c.Trigger("new")
	(*timers)[1].fire()

	select {
	case got := <-c.C():
		if got != "new" {
			t.Fatalf("emitted %q, want newest text", got)
		}
	default:
		t.Fatal("no emission available")
	}
}

func TestCoordinator_RealTimerEmits(t *testing.T) {
	t.Parallel()

	c := New(5 * time.Millisecond)
	defer c.Stop()

	c.Trigger("aloe")

	select {
	case got := <-c.C():
		if got != "aloe" {
			t.Fatalf("emitted %q, want %q", got, "aloe")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for emission")
	}
}

func TestNew_NonPositiveQuietUsesDefault(t *testing.T) {
	c := New(0)
	if c.quiet != DefaultQuiet {
		t.Fatalf("quiet = %v, want %v", c.quiet, DefaultQuiet)
	}
}
