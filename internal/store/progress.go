package store

import (
	"context"

	"github.com/readmateapp/readmate-server/internal/domain"
)

// GetProgress returns the stored progress for a book title.
// Unknown titles return the zero progress {0, 0}; this is never a not-found error.
func (s *Store) GetProgress(ctx context.Context, bookTitle string) (domain.Progress, error) {
	if err := ctx.Err(); err != nil {
		return domain.Progress{}, err
	}

	all, err := s.readProgressMap()
	if err != nil {
		return domain.Progress{}, err
	}
	return all[bookTitle], nil
}

// AllProgress returns the full title-to-progress mapping.
func (s *Store) AllProgress(ctx context.Context) (domain.ProgressMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.readProgressMap()
}

// InitProgress creates a zero entry for a book title if none exists.
// Idempotent: an existing entry is returned untouched.
func (s *Store) InitProgress(ctx context.Context, bookTitle string) (domain.Progress, error) {
	if err := ctx.Err(); err != nil {
		return domain.Progress{}, err
	}

	defer s.lock(keyProgress)()

	all, err := s.readProgressMap()
	if err != nil {
		return domain.Progress{}, err
	}

	if existing, ok := all[bookTitle]; ok {
		return existing, nil
	}

	all[bookTitle] = domain.Progress{}
	if err := s.set(keyProgress, all); err != nil {
		return domain.Progress{}, err
	}
	return domain.Progress{}, nil
}

// SaveProgress upserts the progress entry for a book title.
// The whole blob is rewritten in one transaction.
func (s *Store) SaveProgress(ctx context.Context, bookTitle string, progress domain.Progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer s.lock(keyProgress)()

	all, err := s.readProgressMap()
	if err != nil {
		return err
	}

	all[bookTitle] = progress
	return s.set(keyProgress, all)
}

// RemoveProgress deletes the entry for a book title.
// Removing a missing entry is a silent no-op.
func (s *Store) RemoveProgress(ctx context.Context, bookTitle string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer s.lock(keyProgress)()

	all, err := s.readProgressMap()
	if err != nil {
		return err
	}

	if _, ok := all[bookTitle]; !ok {
		return nil
	}

	delete(all, bookTitle)
	return s.set(keyProgress, all)
}

// readProgressMap loads the progress blob, defaulting to an empty map.
func (s *Store) readProgressMap() (domain.ProgressMap, error) {
	all := domain.ProgressMap{}
	if _, err := s.get(keyProgress, &all); err != nil {
		return nil, err
	}
	if all == nil {
		all = domain.ProgressMap{}
	}
	return all, nil
}
