package command

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher errors.
var (
	ErrWatcherClosed = errors.New("command: watcher closed")
)

// ReloadFunc is called after the watched overlay file changes. The error
// argument carries any load or apply failure; on failure the registry is
// left on its previous table.
type ReloadFunc func(err error)

// Watcher monitors a command overlay file and reloads the registry when
// it changes. Rapid sequences of writes are debounced so the registry is
// rebuilt once per burst.
type Watcher struct {
	mu sync.Mutex

	registry *Registry
	loader   *OverlayLoader
	path     string
	onReload ReloadFunc

	fsw      *fsnotify.Watcher
	debounce time.Duration
	timer    *time.Timer

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// NewWatcher creates a watcher that reloads registry from the overlay at
// path whenever the file changes. onReload may be nil.
func NewWatcher(registry *Registry, path string, onReload ReloadFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		_ = fsw.Close()
		return nil, err
	}

	// Watch the directory rather than the file so editors that replace
	// the file via rename keep being observed.
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		registry: registry,
		loader:   NewOverlayLoader(absPath),
		path:     absPath,
		onReload: onReload,
		fsw:      fsw,
		debounce: 100 * time.Millisecond,
		closeCh:  make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	err := w.reloadOnce()
	if w.onReload != nil {
		w.onReload(err)
	}
}

func (w *Watcher) reloadOnce() error {
	overlay, err := w.loader.Load()
	if err != nil {
		return err
	}

	table, err := Apply(BuiltinTable(), overlay)
	if err != nil {
		return err
	}

	return w.registry.Reload(table)
}
