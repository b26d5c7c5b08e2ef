package service

import (
	"context"
	"log/slog"

	"github.com/readmateapp/readmate-server/internal/speech"
)

// SpeechService reads text aloud through the single-slot speech engine.
type SpeechService struct {
	engine *speech.Engine
	logger *slog.Logger
}

// NewSpeechService creates a new speech service.
func NewSpeechService(engine *speech.Engine, logger *slog.Logger) *SpeechService {
	return &SpeechService{engine: engine, logger: logger}
}

// SpeakRequest is text to read aloud. Language defaults to English,
// the language of the book texts.
type SpeakRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language"`
}

// Speak starts playback, replacing any active utterance.
func (s *SpeechService) Speak(ctx context.Context, req SpeakRequest) (*speech.Utterance, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	lang := req.Language
	if lang == "" {
		lang = "en"
	}

	utterance := s.engine.Speak(req.Text, lang)
	s.logger.Debug("utterance started", "utterance_id", utterance.ID, "language", lang)
	return utterance, nil
}

// Stop halts the active utterance, if any.
func (s *SpeechService) Stop() {
	s.engine.Stop()
}

// Active returns the utterance currently playing.
func (s *SpeechService) Active() (speech.Utterance, bool) {
	return s.engine.Active()
}
