package store

import (
	"context"

	"github.com/readmateapp/readmate-server/internal/domain"
)

// DarkMode returns the stored theme preference, defaulting to false.
func (s *Store) DarkMode(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var dark bool
	if _, err := s.get(keyDarkMode, &dark); err != nil {
		return false, err
	}
	return dark, nil
}

// SetDarkMode stores the theme preference.
func (s *Store) SetDarkMode(ctx context.Context, dark bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer s.lock(keyDarkMode)()
	return s.set(keyDarkMode, dark)
}

// NativeLanguage returns the stored translation target language code.
// Empty until the reader picks one.
func (s *Store) NativeLanguage(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var lang string
	if _, err := s.get(keyNativeLanguage, &lang); err != nil {
		return "", err
	}
	return lang, nil
}

// SetNativeLanguage stores the translation target language code.
func (s *Store) SetNativeLanguage(ctx context.Context, lang string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer s.lock(keyNativeLanguage)()
	return s.set(keyNativeLanguage, lang)
}

// Preferences assembles both preference keys into one snapshot.
func (s *Store) Preferences(ctx context.Context) (domain.Preferences, error) {
	dark, err := s.DarkMode(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}
	lang, err := s.NativeLanguage(ctx)
	if err != nil {
		return domain.Preferences{}, err
	}
	return domain.Preferences{DarkMode: dark, NativeLanguage: lang}, nil
}
