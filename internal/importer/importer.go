// Package importer watches a drop directory and imports plain-text
// files into the local catalog as user books.
package importer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/readmateapp/readmate-server/internal/errors"
)

// Catalog receives imported texts. Implemented by the book service.
type Catalog interface {
	ImportText(ctx context.Context, title, text string) error
}

// defaultDebounce is how long a file must sit unchanged before import.
// Copies into the drop directory are not atomic, so a write burst is
// treated as one drop.
const defaultDebounce = 500 * time.Millisecond

// Watcher imports .txt files dropped into a directory.
type Watcher struct {
	dir      string
	catalog  Catalog
	logger   *slog.Logger
	debounce time.Duration

	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]*time.Timer
	wg      sync.WaitGroup
}

// New creates a watcher over dir. The directory is created if missing.
func New(dir string, catalog Catalog, logger *slog.Logger) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "create import directory")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "create file watcher")
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, errors.Wrap(err, errors.CodeInternal, "watch import directory")
	}

	return &Watcher{
		dir:      dir,
		catalog:  catalog,
		logger:   logger,
		debounce: defaultDebounce,
		watcher:  fsw,
		pending:  make(map[string]*time.Timer),
	}, nil
}

// Start imports any files already present, then blocks processing
// events until ctx is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.importExisting(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("import watcher error", "error", err)
		}
	}
}

// Stop releases the underlying watcher and waits for in-flight imports.
func (w *Watcher) Stop() error {
	err := w.watcher.Close()

	w.mu.Lock()
	for path, timer := range w.pending {
		if timer.Stop() {
			w.wg.Done()
		}
		delete(w.pending, path)
	}
	w.mu.Unlock()

	w.wg.Wait()
	return err
}

// importExisting sweeps the drop directory for files present at startup.
func (w *Watcher) importExisting(ctx context.Context) error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "read import directory")
	}
	for _, entry := range entries {
		if entry.IsDir() || !isTextFile(entry.Name()) {
			continue
		}
		w.importFile(ctx, filepath.Join(w.dir, entry.Name()))
	}
	return nil
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}
	if !isTextFile(event.Name) {
		return
	}

	// Reset the debounce timer on every write so a file still being
	// copied is imported once, after it settles.
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.pending[event.Name]; ok {
		if timer.Stop() {
			w.wg.Done()
		}
	}
	path := event.Name
	w.wg.Add(1)
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()

		w.mu.Lock()
		delete(w.pending, path)
		w.mu.Unlock()

		w.importFile(ctx, path)
	})
}

// importFile reads one dropped file and adds it to the catalog.
// The title is the file name without its extension. Failures are
// logged, never fatal; a bad drop should not stop the watcher.
func (w *Watcher) importFile(ctx context.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		w.logger.Warn("read dropped file", "path", path, "error", err)
		return
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		w.logger.Warn("ignoring empty drop", "path", path)
		return
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	err = w.catalog.ImportText(ctx, title, text)
	switch {
	case errors.Is(err, errors.ErrAlreadyExists):
		w.logger.Debug("drop already in catalog", "title", title)
	case err != nil:
		w.logger.Error("import dropped file", "title", title, "error", err)
	default:
		w.logger.Info("imported dropped book", "title", title)
	}
}

func isTextFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".txt")
}
