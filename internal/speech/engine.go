// Package speech manages text-to-speech playback as an explicit
// single-slot state machine: at most one utterance is active, and
// starting a new one stops whatever is playing.
package speech

import (
	"context"
	"log/slog"
	"sync"

	"github.com/readmateapp/readmate-server/internal/id"
)

// Synthesizer renders one utterance. Synthesize blocks until playback
// finishes or ctx is canceled; cancellation is how the engine stops an
// utterance early.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) error
}

// Utterance is one requested playback.
type Utterance struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Engine serializes playback through a single active slot.
type Engine struct {
	synth  Synthesizer
	logger *slog.Logger

	mu     sync.Mutex
	active *Utterance
	cancel context.CancelFunc
	done   chan struct{}
}

// NewEngine creates an engine around a synthesizer.
func NewEngine(synth Synthesizer, logger *slog.Logger) *Engine {
	return &Engine{synth: synth, logger: logger}
}

// Speak starts playback of text, stopping any active utterance first.
// Playback runs in the background; the returned utterance identifies it.
func (e *Engine) Speak(text, lang string) *Utterance {
	e.mu.Lock()
	prior := e.done
	e.stopLocked()

	utterance := &Utterance{
		ID:       id.MustGenerate("utt"),
		Text:     text,
		Language: lang,
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	e.active = utterance
	e.cancel = cancel
	e.done = done
	e.mu.Unlock()

	go func() {
		defer close(done)
		// Let the canceled synthesizer wind down before starting the
		// next one so playback never overlaps.
		if prior != nil {
			<-prior
		}
		err := e.synth.Synthesize(ctx, text, lang)
		if err != nil && ctx.Err() == nil {
			e.logger.Warn("speech synthesis failed", "error", err, "utterance_id", utterance.ID)
		}

		e.mu.Lock()
		// Only clear the slot if a newer utterance has not replaced us.
		if e.active != nil && e.active.ID == utterance.ID {
			e.active = nil
			e.cancel = nil
			e.done = nil
		}
		e.mu.Unlock()
	}()

	return utterance
}

// Stop cancels the active utterance, if any, and waits for the
// synthesizer to wind down.
func (e *Engine) Stop() {
	e.mu.Lock()
	done := e.done
	e.stopLocked()
	e.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (e *Engine) stopLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.active = nil
	e.done = nil
}

// Active returns the utterance currently playing, if any.
func (e *Engine) Active() (Utterance, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.active == nil {
		return Utterance{}, false
	}
	return *e.active, true
}
