package store

import (
	"context"

	"github.com/readmateapp/readmate-server/internal/domain"
)

// Glossary returns the full personal word list in insertion order.
// A fresh install returns an empty list, never an error.
func (s *Store) Glossary(ctx context.Context) (domain.Glossary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.readGlossary()
}

// AddWord appends an entry after stripping one trailing punctuation mark
// from both word and translation. Duplicate words are permitted; the
// glossary keeps every addition in order.
func (s *Store) AddWord(ctx context.Context, word, translation string) (domain.WordEntry, error) {
	if err := ctx.Err(); err != nil {
		return domain.WordEntry{}, err
	}

	entry := domain.WordEntry{
		Word:        domain.CleanWord(word),
		Translation: domain.CleanWord(translation),
	}

	defer s.lock(keyGlossary)()

	glossary, err := s.readGlossary()
	if err != nil {
		return domain.WordEntry{}, err
	}

	glossary = append(glossary, entry)
	if err := s.set(keyGlossary, glossary); err != nil {
		return domain.WordEntry{}, err
	}
	return entry, nil
}

// RemoveWord deletes every entry whose word matches exactly.
// Removing an unknown word is a silent no-op.
func (s *Store) RemoveWord(ctx context.Context, word string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer s.lock(keyGlossary)()

	glossary, err := s.readGlossary()
	if err != nil {
		return err
	}

	filtered := glossary.Without(word)
	if len(filtered) == len(glossary) {
		return nil
	}
	return s.set(keyGlossary, filtered)
}

// readGlossary loads the glossary blob, defaulting to an empty list.
func (s *Store) readGlossary() (domain.Glossary, error) {
	glossary := domain.Glossary{}
	if _, err := s.get(keyGlossary, &glossary); err != nil {
		return nil, err
	}
	return glossary, nil
}
