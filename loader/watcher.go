package loader

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/david4096/sparql-agent-sub003/shex"
)

// WatchEvent is one schema reload attempt: either a freshly parsed
// schema or the error that prevented it.
type WatchEvent struct {
	Schema *shex.Schema
	Err    error
}

// Watcher reparses a schema file whenever it changes and delivers the
// outcome on an event channel. Editors often write files with several
// rapid-fire operations, so changes are debounced before reparsing.
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	events   chan WatchEvent
}

// NewWatcher creates a watcher for one schema file.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		path:     path,
		debounce: 100 * time.Millisecond,
		watcher:  fsw,
		logger:   logger,
		events:   make(chan WatchEvent, 16),
	}, nil
}

// Events returns the channel of reload outcomes.
func (w *Watcher) Events() <-chan WatchEvent {
	return w.events
}

// Start watches the schema file until the context is cancelled. The
// containing directory is watched rather than the file itself, so
// rename-and-replace saves keep working.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	go w.run(ctx)
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	defer w.watcher.Close()
	defer close(w.events)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("schema file changed", "path", w.path, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				rearmDebounce(timer, timerC, w.debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			schema, err := FromFile(w.path)
			if err != nil {
				w.logger.Warn("schema reload failed", "path", w.path, "error", err)
			} else {
				w.logger.Debug("schema reloaded", "path", w.path, "shapes", len(schema.ShapeIDs()))
			}
			select {
			case w.events <- WatchEvent{Schema: schema, Err: err}:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// rearmDebounce restarts the debounce timer. A timer that already fired
// leaves its tick buffered in c; the tick must be drained before Reset
// or the new window ends immediately.
func rearmDebounce(timer *time.Timer, c <-chan time.Time, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-c:
		default:
		}
	}
	timer.Reset(d)
}
