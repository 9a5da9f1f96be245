package registry

import (
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher signals when any scheme file under the registry's search roots
// changes, so consumers can call Refresh and re-query. Events are debounced:
// a burst of file operations collapses into one signal.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan struct{}
	stop      chan struct{}
	debounce  *time.Timer
	mu        sync.Mutex
	closed    bool
}

const watchDebounce = 100 * time.Millisecond

// Watch starts watching the registry's search roots. Roots that do not exist
// yet are skipped; at least one must be watchable.
func (r *Registry) Watch() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	added := 0
	for _, dir := range r.dirs() {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			r.logger.Warn("cannot watch scheme directory", "dir", dir, "err", err)
			continue
		}
		added++
	}
	if added == 0 {
		fsw.Close()
		return nil, os.ErrNotExist
	}

	w := &Watcher{
		fsWatcher: fsw,
		events:    make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events delivers one signal per debounced burst of changes. The channel is
// closed when the watcher shuts down.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher and releases its file handles.
func (w *Watcher) Close() error {
	close(w.stop)
	return w.fsWatcher.Close()
}

func (w *Watcher) run() {
	defer func() {
		w.mu.Lock()
		w.closed = true
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.mu.Unlock()
		close(w.events)
	}()

	for {
		select {
		case <-w.stop:
			return
		case _, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.mu.Lock()
			if w.debounce != nil {
				w.debounce.Stop()
			}
			w.debounce = time.AfterFunc(watchDebounce, func() {
				w.mu.Lock()
				defer w.mu.Unlock()
				if w.closed {
					return
				}
				select {
				case w.events <- struct{}{}:
				default: // signal already pending
				}
			})
			w.mu.Unlock()
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}
