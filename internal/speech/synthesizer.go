package speech

import (
	"context"
	"strings"
	"time"
)

// PacedSynthesizer is the default synthesizer. It has no audio output;
// playback on the device happens client-side, so the server only needs
// to hold the slot for a realistic duration so that active-utterance
// queries and stops behave like real playback.
type PacedSynthesizer struct {
	wordsPerMinute int
}

// NewPacedSynthesizer creates a synthesizer pacing at wordsPerMinute.
func NewPacedSynthesizer(wordsPerMinute int) *PacedSynthesizer {
	if wordsPerMinute < 1 {
		wordsPerMinute = 150
	}
	return &PacedSynthesizer{wordsPerMinute: wordsPerMinute}
}

// Synthesize blocks for the estimated speaking time of text or until
// ctx is canceled.
func (p *PacedSynthesizer) Synthesize(ctx context.Context, text, _ string) error {
	words := len(strings.Fields(text))
	if words == 0 {
		return nil
	}
	duration := time.Duration(words) * time.Minute / time.Duration(p.wordsPerMinute)

	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
