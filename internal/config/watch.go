package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
)

// DefaultReloadDelay coalesces editor write bursts into one reload.
const DefaultReloadDelay = 150 * time.Millisecond

// CatalogWatcher keeps a CatalogHolder in sync with status.options in a
// config file. A failed reload keeps the previous snapshot.
type CatalogWatcher struct {
	path    string
	holder  *status.CatalogHolder
	watcher *fsnotify.Watcher
	delay   time.Duration
	logger  *slog.Logger
	onSwap  func(*status.Catalog)

	closeOnce sync.Once
}

// WatcherOption configures a CatalogWatcher.
type WatcherOption func(*CatalogWatcher)

// WithReloadDelay overrides DefaultReloadDelay.
func WithReloadDelay(d time.Duration) WatcherOption {
	return func(w *CatalogWatcher) { w.delay = d }
}

// WithLogger sets the logger used for reload reports.
func WithLogger(l *slog.Logger) WatcherOption {
	return func(w *CatalogWatcher) { w.logger = l }
}

// OnSwap registers a callback run after every successful snapshot swap.
func OnSwap(fn func(*status.Catalog)) WatcherOption {
	return func(w *CatalogWatcher) { w.onSwap = fn }
}

// NewCatalogWatcher watches the directory holding path. Editors often replace
// files instead of writing in place, so the file itself is not watched.
func NewCatalogWatcher(path string, holder *status.CatalogHolder, opts ...WatcherOption) (*CatalogWatcher, error) {
	if path == "" {
		return nil, ErrNoConfigFile
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &CatalogWatcher{
		path:    abs,
		holder:  holder,
		watcher: fw,
		delay:   DefaultReloadDelay,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.holder == nil {
		w.holder = status.NewCatalogHolder(nil)
	}
	return w, nil
}

// Holder returns the holder the watcher updates.
func (w *CatalogWatcher) Holder() *status.CatalogHolder { return w.holder }

// Reload reads the config file once and swaps the snapshot on success.
func (w *CatalogWatcher) Reload() (*status.Catalog, error) {
	labels, err := ReadStatusOptions(w.path)
	if err != nil {
		return nil, err
	}
	c := w.holder.Replace(labels)
	w.logger.Debug("status catalog reloaded", "path", w.path, "labels", c.Len())
	if w.onSwap != nil {
		w.onSwap(c)
	}
	return c, nil
}

// Run processes file events until ctx is cancelled or the watcher is closed.
func (w *CatalogWatcher) Run(ctx context.Context) error {
	defer w.Close()

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", "error", err)

		case evt, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(evt.Name) != w.path {
				continue
			}
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			trigger = timer.C

		case <-trigger:
			trigger = nil
			if _, err := w.Reload(); err != nil {
				w.logger.Warn("keeping previous status catalog", "path", w.path, "error", err)
			}
		}
	}
}

// Close releases the underlying watcher. Safe to call more than once.
func (w *CatalogWatcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}
