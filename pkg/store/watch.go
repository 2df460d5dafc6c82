package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/selcan/hq/pkg/debounce"
)

// Event is emitted by Persistence.Watch when a stored collection changes.
type Event struct {
	Collection string
}

// Watch streams change events until ctx is cancelled. Rapid bursts of
// filesystem activity are coalesced so consumers redraw once per burst.
// The channel is closed once ctx is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(p.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	var mu sync.Mutex
	closed := false
	changed := make(map[string]struct{})

	go func() {
		defer close(events)
		// A timer callback may still be in flight when this goroutine winds
		// down; the closed flag keeps it from sending on a closed channel.
		defer func() {
			mu.Lock()
			closed = true
			mu.Unlock()
		}()
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		coalesce := debounce.New(100 * time.Millisecond)
		defer coalesce.Stop()

		flush := func() {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			for name := range changed {
				select {
				case events <- Event{Collection: name}:
				default:
					// Drop rather than block the watcher; the consumer's
					// next refresh picks the change up anyway.
				}
			}
			changed = make(map[string]struct{})
		}

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch: %v\n", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Base(evt.Name)
				if name == "" || name[0] == '.' {
					continue
				}
				mu.Lock()
				changed[name] = struct{}{}
				mu.Unlock()
				coalesce.Trigger(flush)
			}
		}
	}()

	return events, nil
}
