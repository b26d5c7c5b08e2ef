// Package quiz implements the multiple-choice vocabulary game played
// over the reader's personal glossary.
package quiz

import (
	"math/rand/v2"
	"sync"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/errors"
)

const (
	// DefaultMinimumWords is the glossary size needed to start a game.
	DefaultMinimumWords = 10
	// DefaultOptionsCount is how many choices each round presents.
	DefaultOptionsCount = 3
)

// Round is one question: a word and a shuffled set of candidate
// translations, exactly one of which is correct.
type Round struct {
	Word    string   `json:"word"`
	Options []string `json:"options"`

	answer string
}

// Answer returns the correct translation for the round.
func (r *Round) Answer() string {
	return r.answer
}

// Game is one play-through of the glossary. Every entry is asked
// exactly once per game, in random order; the game ends when the pool
// of unasked entries is empty.
type Game struct {
	ID string

	mu           sync.Mutex
	glossary     domain.Glossary
	remaining    []int
	current      *Round
	currentEntry int
	score        int
	rounds       int
	finished     bool
	optionsCount int
	rng          *rand.Rand
}

// NewGame starts a game over a snapshot of the glossary.
// The glossary must hold at least minimumWords entries.
func NewGame(id string, glossary domain.Glossary, minimumWords, optionsCount int) (*Game, error) {
	if minimumWords < 1 {
		minimumWords = DefaultMinimumWords
	}
	if optionsCount < 2 {
		optionsCount = DefaultOptionsCount
	}
	if len(glossary) < minimumWords {
		return nil, errors.Validationf("glossary has %d words, %d required to start a game",
			len(glossary), minimumWords)
	}

	g := &Game{
		ID:           id,
		glossary:     glossary,
		optionsCount: optionsCount,
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		currentEntry: -1,
	}
	g.resetLocked()
	return g, nil
}

func (g *Game) resetLocked() {
	g.remaining = make([]int, len(g.glossary))
	for i := range g.remaining {
		g.remaining[i] = i
	}
	g.current = nil
	g.currentEntry = -1
	g.score = 0
	g.rounds = 0
	g.finished = false
}

// Replay resets the pool and score for a fresh run over the same glossary.
func (g *Game) Replay() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

// NextRound draws the next question. The correct entry is picked
// uniformly from the unasked pool; distractors are drawn without
// replacement from the rest of the glossary, shrinking gracefully if
// the glossary is smaller than the option count.
// Fails with CONFLICT when the game is over or a round is unanswered.
func (g *Game) NextRound() (*Round, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.finished {
		return nil, errors.Conflict("game is over")
	}
	if g.current != nil {
		return g.current, nil
	}

	pick := g.rng.IntN(len(g.remaining))
	entryIdx := g.remaining[pick]
	entry := g.glossary[entryIdx]

	// Distractors come from the whole glossary, not just the unasked
	// pool, so late rounds still get a full option set.
	others := make([]int, 0, len(g.glossary)-1)
	for i := range g.glossary {
		if i != entryIdx {
			others = append(others, i)
		}
	}
	g.rng.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	wrongCount := g.optionsCount - 1
	if wrongCount > len(others) {
		wrongCount = len(others)
	}

	options := make([]string, 0, wrongCount+1)
	for _, idx := range others[:wrongCount] {
		options = append(options, g.glossary[idx].Translation)
	}
	options = append(options, entry.Translation)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	g.current = &Round{
		Word:    entry.Word,
		Options: options,
		answer:  entry.Translation,
	}
	g.currentEntry = pick
	return g.current, nil
}

// Result reports the outcome of answering a round.
type Result struct {
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
	Score   int    `json:"score"`
	Rounds  int    `json:"rounds"`
	Over    bool   `json:"over"`
}

// SubmitAnswer scores the current round. The score increments only on
// an exact match with the correct translation; either way the asked
// word leaves the pool and will not reappear this game.
// Fails with CONFLICT when no round is pending.
func (g *Game) SubmitAnswer(selected string) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current == nil {
		return Result{}, errors.Conflict("no round in progress")
	}

	correct := selected == g.current.answer
	if correct {
		g.score++
	}
	g.rounds++

	answer := g.current.answer
	g.remaining[g.currentEntry] = g.remaining[len(g.remaining)-1]
	g.remaining = g.remaining[:len(g.remaining)-1]
	g.current = nil
	g.currentEntry = -1
	g.finished = len(g.remaining) == 0

	return Result{
		Correct: correct,
		Answer:  answer,
		Score:   g.score,
		Rounds:  g.rounds,
		Over:    g.finished,
	}, nil
}

// Score returns the current score.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// Remaining returns how many words have not been asked yet.
func (g *Game) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.remaining)
}

// Over reports whether every word has been asked.
func (g *Game) Over() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.finished
}
