package service

import (
	"context"
	"log/slog"

	"github.com/readmateapp/readmate-server/internal/errors"
	"github.com/readmateapp/readmate-server/internal/store"
	"github.com/readmateapp/readmate-server/internal/translate"
)

// TranslatorService translates free-form text outside any session.
type TranslatorService struct {
	translator translate.Translator
	store      *store.Store
	logger     *slog.Logger
}

// NewTranslatorService creates a new translator service.
func NewTranslatorService(translator translate.Translator, st *store.Store, logger *slog.Logger) *TranslatorService {
	return &TranslatorService{translator: translator, store: st, logger: logger}
}

// TranslateRequest is text to translate. TargetLang defaults to the
// reader's stored native language.
type TranslateRequest struct {
	Text       string `json:"text" validate:"required"`
	TargetLang string `json:"target_lang"`
}

// TranslateResponse is the translated text.
type TranslateResponse struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
	TargetLang  string `json:"target_lang"`
}

// Translate translates text into the requested or stored language.
func (s *TranslatorService) Translate(ctx context.Context, req TranslateRequest) (*TranslateResponse, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	targetLang := req.TargetLang
	if targetLang == "" {
		lang, err := s.store.NativeLanguage(ctx)
		if err != nil {
			return nil, err
		}
		if lang == "" {
			return nil, errors.Validation("no target language given and no native language set")
		}
		targetLang = lang
	}

	translation, err := s.translator.Translate(ctx, req.Text, targetLang)
	if err != nil {
		return nil, err
	}

	return &TranslateResponse{
		Text:        req.Text,
		Translation: translation,
		TargetLang:  targetLang,
	}, nil
}
