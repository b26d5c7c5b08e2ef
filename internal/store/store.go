// Package store provides Badger-backed persistence for reader state.
//
// Each logical store (progress, glossary, favorites, preferences) is one JSON
// blob under a fixed key, mirroring the secure-store layout of the mobile
// client this server grew out of. Mutations are read-modify-write over the
// whole blob, serialized by a per-key mutex so concurrent writers cannot
// silently drop each other's updates.
package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dgraph-io/badger/v4"

	domainerrors "github.com/readmateapp/readmate-server/internal/errors"
)

// Blob keys. One serialized document per logical store.
const (
	keyProgress       = "bookProgress"
	keyGlossary       = "dictionary"
	keyFavorites      = "favorites"
	keyDarkMode       = "darkMode"
	keyNativeLanguage = "nativeLanguage"
)

// Store wraps a Badger database instance holding the reader-state blobs.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	// One mutex per blob key. Guards the read-modify-write cycle,
	// not individual Badger transactions.
	locks map[string]*sync.Mutex
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	s := &Store{
		db:     db,
		logger: logger,
		locks: map[string]*sync.Mutex{
			keyProgress:       {},
			keyGlossary:       {},
			keyFavorites:      {},
			keyDarkMode:       {},
			keyNativeLanguage: {},
		},
	}

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return s, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// lock acquires the blob mutex for key and returns the unlock func.
func (s *Store) lock(key string) func() {
	mu := s.locks[key]
	mu.Lock()
	return mu.Unlock
}

// get retrieves and unmarshals a blob. Returns false when the key is absent;
// absence is not an error so fresh installs read empty defaults.
func (s *Store) get(key string, dest any) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, domainerrors.Wrapf(err, domainerrors.CodeInternal, "read %s blob", key)
	}
	return true, nil
}

// set marshals and stores a blob under key.
func (s *Store) set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeInternal, "marshal %s blob", key)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return domainerrors.Wrapf(err, domainerrors.CodeInternal, "write %s blob", key)
	}
	return nil
}
