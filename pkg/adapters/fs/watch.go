package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/mulch/pkg/core"
)

// Watch observes external changes to the note collection and emits one
// event per settled record change. The pattern is a doublestar glob
// matched against note ids; empty means all notes. The returned channel
// closes when ctx is canceled.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	cfg, err := s.LoadVaultConfig()
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.notesDir()); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch notes directory: %w", err)
	}

	events := make(chan core.Event, 16)
	deb := newDebouncer(cfg.Debounce())

	// Only this goroutine sends on or closes events. Timer callbacks hand
	// settled events back through the debouncer's ready queue instead of
	// touching the channel, so a late timer can never race the close.
	go func() {
		defer close(events)
		defer watcher.Close()
		defer deb.stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-deb.kick:
				for _, e := range deb.drain() {
					select {
					case events <- e:
					case <-ctx.Done():
						return
					}
				}

			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				e, match := s.mapEvent(ev, pattern, cfg.Ignore)
				if !match {
					continue
				}
				deb.add(e)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.config.Logger.Error("fsnotify error", "error", err)
				if s.config.ErrorHandler != nil {
					s.config.ErrorHandler(err)
				}
			}
		}
	}()

	return events, nil
}

// mapEvent turns a filesystem event into a domain event, filtering out
// non-records and ignored ids.
func (s *Store) mapEvent(ev fsnotify.Event, pattern string, ignore []string) (core.Event, bool) {
	name := filepath.Base(ev.Name)
	if filepath.Ext(name) != ".md" || strings.HasPrefix(name, ".") {
		return core.Event{}, false
	}
	id := strings.TrimSuffix(name, ".md")

	if pattern != "" {
		ok, err := doublestar.Match(pattern, id)
		if err != nil || !ok {
			return core.Event{}, false
		}
	}
	for _, ig := range ignore {
		if ok, _ := doublestar.Match(ig, id); ok {
			return core.Event{}, false
		}
	}

	var etype core.EventType
	switch {
	case ev.Has(fsnotify.Create):
		etype = core.EventCreate
	case ev.Has(fsnotify.Write):
		etype = core.EventModify
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		etype = core.EventDelete
	default:
		return core.Event{}, false
	}

	return core.Event{Type: etype, ID: id, Timestamp: time.Now().Unix()}, true
}

// debouncer collapses bursts of events for the same record into the last
// one seen within the window. Editors routinely produce several writes per
// save.
//
// Timer callbacks only append to the ready queue under the mutex and pulse
// kick; they never deliver anywhere themselves. After stop returns, no
// callback appends again and the queue is dead.
type debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	pending map[string]*time.Timer
	ready   []core.Event
	kick    chan struct{}
	stopped bool
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window:  window,
		pending: make(map[string]*time.Timer),
		kick:    make(chan struct{}, 1),
	}
}

func (d *debouncer) add(e core.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if t, ok := d.pending[e.ID]; ok {
		t.Stop()
	}
	d.pending[e.ID] = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		delete(d.pending, e.ID)
		if d.stopped {
			return
		}
		d.ready = append(d.ready, e)
		select {
		case d.kick <- struct{}{}:
		default:
		}
	})
}

// drain returns the settled events accumulated since the last call.
func (d *debouncer) drain() []core.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.ready
	d.ready = nil
	return out
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	for id, t := range d.pending {
		t.Stop()
		delete(d.pending, id)
	}
	d.ready = nil
}
