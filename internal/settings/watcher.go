package settings

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher observes the settings file for changes made outside the running
// process (another editor, another pyflags instance) and reports the freshly
// loaded token list to a callback. Events are debounced so editors that save
// in several writes trigger a single reload.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	store    *Store
	log      *zap.Logger
	onChange func(tokens []string)
	debounce time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewWatcher creates a watcher over the store's settings file. onChange is
// invoked from the watcher goroutine. A nil logger is replaced with a no-op.
func NewWatcher(store *Store, log *zap.Logger, onChange func(tokens []string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		fsw:      fsw,
		store:    store,
		log:      log,
		onChange: onChange,
		debounce: 250 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. Non-blocking; the watch runs in a goroutine until
// Stop is called or ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	// Watch the directory, not the file: atomic saves replace the file via
	// rename, which drops a direct file watch.
	dir := filepath.Dir(w.store.Path())
	if err := os.MkdirAll(dir, 0755); err != nil {
		w.log.Warn("settings watcher: failed to create settings dir", zap.String("dir", dir), zap.Error(err))
	}
	if err := w.fsw.Add(dir); err != nil {
		w.fsw.Close()
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer w.fsw.Close()

	// Trailing-edge debounce: events mark the file pending and the reload
	// fires once the quiet period elapses, so the last save in a burst is
	// never dropped.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	var pending bool
	var lastEvent time.Time

	target := filepath.Clean(w.store.Path())
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			pending = true
			lastEvent = time.Now()
		case <-ticker.C:
			if !pending || time.Since(lastEvent) < w.debounce {
				continue
			}
			pending = false
			if err := w.store.Load(); err != nil {
				w.log.Warn("settings watcher: reload failed", zap.Error(err))
				continue
			}
			w.log.Debug("settings watcher: settings changed on disk", zap.String("path", target))
			w.onChange(w.store.Args())
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("settings watcher: watch error", zap.Error(err))
		}
	}
}
