package quiz

import (
	"sync"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/errors"
	"github.com/readmateapp/readmate-server/internal/id"
)

// Registry tracks in-flight games by ID. Games are in-memory only; a
// restart forfeits them, matching the throwaway nature of a quiz run.
type Registry struct {
	minimumWords int
	optionsCount int

	mu    sync.RWMutex
	games map[string]*Game
}

// NewRegistry creates a registry with the given game settings.
func NewRegistry(minimumWords, optionsCount int) *Registry {
	return &Registry{
		minimumWords: minimumWords,
		optionsCount: optionsCount,
		games:        make(map[string]*Game),
	}
}

// Start creates and registers a game over a glossary snapshot.
func (r *Registry) Start(glossary domain.Glossary) (*Game, error) {
	game, err := NewGame(id.MustGenerate("game"), glossary, r.minimumWords, r.optionsCount)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[game.ID] = game
	return game, nil
}

// Get returns the game with the given ID.
// Returns errors.ErrNotFound for unknown or finished-and-removed games.
func (r *Registry) Get(gameID string) (*Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	game, ok := r.games[gameID]
	if !ok {
		return nil, errors.NotFoundf("quiz game %s not found", gameID)
	}
	return game, nil
}

// Remove drops a game from the registry. Unknown IDs are a no-op.
func (r *Registry) Remove(gameID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, gameID)
}

// Len returns the number of registered games.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
