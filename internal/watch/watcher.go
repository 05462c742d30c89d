// Package watch re-runs classification whenever the input file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// debounceDelay coalesces the bursts of write events editors and log
// writers produce for a single logical change.
const debounceDelay = 100 * time.Millisecond

// Watcher monitors one file via fsnotify and invokes a callback after
// each change, debounced.
type Watcher struct {
	path     string
	onChange func()
	log      zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// New creates a watcher for path that calls onChange after every
// write, debounced. onChange runs on a timer goroutine and must be
// safe to call repeatedly.
func New(path string, log zerolog.Logger, onChange func()) *Watcher {
	return &Watcher{path: path, onChange: onChange, log: log}
}

// Run watches until ctx is cancelled. It watches the file's directory
// rather than the file itself so it survives editors and rotators that
// replace the file on save.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("watch error")
		}
	}
}

func (w *Watcher) debounceChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceDelay, w.onChange)
}
