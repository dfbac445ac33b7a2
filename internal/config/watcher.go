package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"countup/internal/logging"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file when it changes on disk. It watches the
// file's directory so editors that save by rename are still noticed.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	path        string
	onReload    func(*Config)
	pending     time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats WatcherStats
}

// WatcherStats tracks watcher activity.
type WatcherStats struct {
	Events  int
	Reloads int
	Errors  int
}

// NewWatcher creates a watcher for path. onReload receives every config
// that loads and validates; broken edits are logged and ignored.
func NewWatcher(path string, onReload func(*Config)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{
		watcher:     w,
		path:        abs,
		onReload:    onReload,
		debounceDur: 200 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	logging.Config("watching config file: %s", w.path)

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.Get(logging.CategoryConfig).Error("error closing watcher: %v", err)
	}
}

// Stats returns a snapshot of watcher activity.
func (w *Watcher) Stats() WatcherStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	debounceTicker := time.NewTicker(50 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryConfig).Error("watcher error: %v", err)
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-debounceTicker.C:
			w.processPending()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	w.stats.Events++
	w.pending = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) processPending() {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	timer := logging.StartTimer(logging.CategoryConfig, "config reload")
	cfg, err := Load(w.path)
	if err == nil {
		err = cfg.Validate()
	}
	timer.Stop()
	if err != nil {
		logging.ConfigWarn("ignoring config change: %v", err)
		w.mu.Lock()
		w.stats.Errors++
		w.mu.Unlock()
		return
	}

	w.mu.Lock()
	w.stats.Reloads++
	w.mu.Unlock()

	logging.Config("config reloaded from %s", w.path)
	if w.onReload != nil {
		w.onReload(cfg)
	}
}
