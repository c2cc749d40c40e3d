package web

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/arthur-debert/packlist/pkg/catalog"
	"github.com/arthur-debert/packlist/pkg/errors"
	"github.com/arthur-debert/packlist/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// CatalogStore holds the catalog served to new and existing sessions
type CatalogStore struct {
	mu  sync.RWMutex
	cat *catalog.Catalog
}

// NewCatalogStore creates a store holding cat
func NewCatalogStore(cat *catalog.Catalog) *CatalogStore {
	return &CatalogStore{cat: cat}
}

// Get returns the current catalog
func (s *CatalogStore) Get() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

// Set swaps the current catalog
func (s *CatalogStore) Set(cat *catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cat = cat
}

// CatalogWatcher reloads a catalog file into a store when it changes. An
// edit that fails to parse or validate keeps the previous catalog.
type CatalogWatcher struct {
	store    *CatalogStore
	fs       afero.Fs
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	reloaded chan struct{}
}

// NewCatalogWatcher watches path. The parent directory is watched so
// editors that replace the file are seen.
func NewCatalogWatcher(store *CatalogStore, fs afero.Fs, path string) (*CatalogWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to create catalog watcher")
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, errors.Wrapf(err, errors.ErrCatalogLoad, "failed to watch %s", path).
			WithDetail("path", path)
	}

	return &CatalogWatcher{
		store:    store,
		fs:       fs,
		path:     filepath.Clean(path),
		debounce: 100 * time.Millisecond,
		watcher:  w,
		reloaded: make(chan struct{}, 1),
	}, nil
}

// Reloaded signals after each reload attempt
func (w *CatalogWatcher) Reloaded() <-chan struct{} {
	return w.reloaded
}

// Run processes events until ctx is done
func (w *CatalogWatcher) Run(ctx context.Context) {
	logger := logging.GetLogger("web.watcher")
	defer func() { _ = w.watcher.Close() }()

	timer := time.NewTimer(0)
	<-timer.C // drain initial timer
	pending := false

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			timer.Reset(w.debounce)
		case <-timer.C:
			if pending {
				pending = false
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("catalog watcher error")
		}
	}
}

func (w *CatalogWatcher) reload() {
	logger := logging.GetLogger("web.watcher")

	cat, err := catalog.Load(w.fs, w.path)
	if err != nil {
		logger.Error().Err(err).Str("path", w.path).Msg("catalog reload failed, keeping previous catalog")
	} else {
		w.store.Set(cat)
		logger.Info().Str("path", w.path).Str("version", cat.Version).Msg("catalog reloaded")
	}

	select {
	case w.reloaded <- struct{}{}:
	default:
	}
}
