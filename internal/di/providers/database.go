package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/readmateapp/readmate-server/internal/config"
	"github.com/readmateapp/readmate-server/internal/logger"
	"github.com/readmateapp/readmate-server/internal/store"
	"github.com/readmateapp/readmate-server/internal/store/catalog"
)

// StoreHandle wraps the key-value store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the reading-state store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Store.BasePath, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Reading-state store initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// CatalogHandle wraps the book catalog with shutdown capability.
type CatalogHandle struct {
	*catalog.Store
}

// Shutdown implements do.Shutdownable.
func (h *CatalogHandle) Shutdown() error {
	return h.Close()
}

// ProvideCatalog provides the local book catalog.
func ProvideCatalog(i do.Injector) (*CatalogHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	cat, err := catalog.Open(cfg.Catalog.DatabasePath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Book catalog initialized", "path", cfg.Catalog.DatabasePath)

	return &CatalogHandle{Store: cat}, nil
}
