package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestOnlyLastTriggerFires(t *testing.T) {
	d := New(50 * time.Millisecond)
	var got atomic.Int32

	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.Trigger(func() { got.Store(n) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if v := got.Load(); v != 5 {
		t.Fatalf("expected only the last trigger to fire, got %d", v)
	}
}

func TestStopCancelsPending(t *testing.T) {
	d := New(20 * time.Millisecond)
	var fired atomic.Bool

	d.Trigger(func() { fired.Store(true) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	if fired.Load() {
		t.Fatal("stopped debouncer should not fire")
	}
}

func TestFlushRunsImmediately(t *testing.T) {
	d := New(time.Hour)
	var fired atomic.Bool

	d.Trigger(func() { fired.Store(true) })
	d.Flush()

	if !fired.Load() {
		t.Fatal("flush should run the pending call")
	}

	// A second flush with nothing pending is a no-op.
	d.Flush()
}
