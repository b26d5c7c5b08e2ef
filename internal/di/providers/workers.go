package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/readmateapp/readmate-server/internal/config"
	"github.com/readmateapp/readmate-server/internal/importer"
	"github.com/readmateapp/readmate-server/internal/logger"
	"github.com/readmateapp/readmate-server/internal/service"
)

// ImportWatcherHandle wraps the drop-directory watcher with shutdown capability.
// Watcher is nil when no import path is configured.
type ImportWatcherHandle struct {
	*importer.Watcher
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *ImportWatcherHandle) Shutdown() error {
	if h.Watcher == nil {
		return nil
	}
	h.cancel()
	return h.Stop()
}

// ProvideImportWatcher provides the .txt drop-directory import watcher.
func ProvideImportWatcher(i do.Injector) (*ImportWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Catalog.ImportPath == "" {
		log.Info("Import watcher disabled, no import path configured")
		return &ImportWatcherHandle{}, nil
	}

	bookService := do.MustInvoke[*service.BookService](i)

	w, err := importer.New(cfg.Catalog.ImportPath, bookService, log.Logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := w.Start(ctx); err != nil {
			log.Error("Import watcher stopped", "error", err)
		}
	}()

	log.Info("Import watcher started", "path", cfg.Catalog.ImportPath)

	return &ImportWatcherHandle{Watcher: w, cancel: cancel}, nil
}
