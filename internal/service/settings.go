package service

import (
	"context"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/errors"
	"github.com/readmateapp/readmate-server/internal/normalize"
	"github.com/readmateapp/readmate-server/internal/store"
)

// SettingsService manages reader preferences.
type SettingsService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(st *store.Store, logger *slog.Logger) *SettingsService {
	return &SettingsService{store: st, logger: logger}
}

// Get returns the current preferences.
func (s *SettingsService) Get(ctx context.Context) (domain.Preferences, error) {
	return s.store.Preferences(ctx)
}

// SetDarkModeRequest sets the theme preference.
type SetDarkModeRequest struct {
	DarkMode bool `json:"dark_mode"`
}

// SetDarkMode stores the theme preference.
func (s *SettingsService) SetDarkMode(ctx context.Context, req SetDarkModeRequest) (domain.Preferences, error) {
	if err := s.store.SetDarkMode(ctx, req.DarkMode); err != nil {
		return domain.Preferences{}, err
	}
	s.logger.Info("dark mode set", "dark_mode", req.DarkMode)
	return s.store.Preferences(ctx)
}

// SetLanguageRequest sets the translation target language.
type SetLanguageRequest struct {
	NativeLanguage string `json:"native_language" validate:"required"`
}

// SetLanguage stores the reader's native language after checking it is
// a well-formed language tag. Full names ("Spanish") and 3-letter codes
// are normalized to their ISO 639-1 form before storing.
func (s *SettingsService) SetLanguage(ctx context.Context, req SetLanguageRequest) (domain.Preferences, error) {
	if err := validate.Validate(req); err != nil {
		return domain.Preferences{}, err
	}

	lang, ok := normalize.Language(req.NativeLanguage)
	if !ok {
		lang = req.NativeLanguage
	}
	if _, err := language.Parse(lang); err != nil {
		return domain.Preferences{}, errors.Validationf("unknown language %q", req.NativeLanguage).WithCause(err)
	}

	if err := s.store.SetNativeLanguage(ctx, lang); err != nil {
		return domain.Preferences{}, err
	}
	s.logger.Info("native language set", "language", lang)
	return s.store.Preferences(ctx)
}
