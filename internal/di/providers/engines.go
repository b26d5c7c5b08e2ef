package providers

import (
	"github.com/samber/do/v2"

	"github.com/readmateapp/readmate-server/internal/config"
	"github.com/readmateapp/readmate-server/internal/logger"
	"github.com/readmateapp/readmate-server/internal/quiz"
	"github.com/readmateapp/readmate-server/internal/reader"
	"github.com/readmateapp/readmate-server/internal/speech"
)

// ProvideSessionRegistry provides the open reading session registry.
func ProvideSessionRegistry(i do.Injector) (*reader.Registry, error) {
	return reader.NewRegistry(), nil
}

// ProvideQuizRegistry provides the running quiz game registry.
func ProvideQuizRegistry(i do.Injector) (*quiz.Registry, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return quiz.NewRegistry(cfg.Quiz.MinimumWords, cfg.Quiz.OptionsCount), nil
}

// SpeechEngineHandle wraps the speech engine with shutdown capability.
type SpeechEngineHandle struct {
	*speech.Engine
}

// Shutdown implements do.Shutdownable.
func (h *SpeechEngineHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideSpeechEngine provides the single-slot speech engine.
func ProvideSpeechEngine(i do.Injector) (*SpeechEngineHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	engine := speech.NewEngine(speech.NewPacedSynthesizer(0), log.Logger)
	return &SpeechEngineHandle{Engine: engine}, nil
}
