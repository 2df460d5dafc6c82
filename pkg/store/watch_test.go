package store

import (
	"context"
	"testing"
	"time"

	"github.com/selcan/hq/pkg/dates"
	"github.com/selcan/hq/pkg/item"
)

func TestWatchEmitsCollectionChanges(t *testing.T) {
	p := load(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Append(DailyTasks, dates.Key("2024-03-15"), item.New("hello")); err != nil {
		t.Fatalf("append: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Collection == DailyTasks {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for collection change event")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	p := load(t)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// Drain a straggler event; the channel must close shortly.
			select {
			case _, ok = <-ch:
				if ok {
					t.Fatal("channel should close after cancel")
				}
			case <-time.After(2 * time.Second):
				t.Fatal("timed out waiting for close")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for close")
	}
}
