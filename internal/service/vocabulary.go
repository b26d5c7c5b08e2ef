package service

import (
	"context"
	"log/slog"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/quiz"
	"github.com/readmateapp/readmate-server/internal/store"
)

// VocabularyService manages the personal glossary and the quiz games
// played over it.
type VocabularyService struct {
	store   *store.Store
	quizzes *quiz.Registry
	logger  *slog.Logger
}

// NewVocabularyService creates a new vocabulary service.
func NewVocabularyService(st *store.Store, quizzes *quiz.Registry, logger *slog.Logger) *VocabularyService {
	return &VocabularyService{store: st, quizzes: quizzes, logger: logger}
}

// ListWords returns the glossary in insertion order.
func (s *VocabularyService) ListWords(ctx context.Context) (domain.Glossary, error) {
	return s.store.Glossary(ctx)
}

// AddWordRequest is a word to save with its translation.
type AddWordRequest struct {
	Word        string `json:"word" validate:"required"`
	Translation string `json:"meaning" validate:"required"`
}

// AddWord saves a word to the glossary. Trailing punctuation is
// stripped from both fields; duplicates are permitted.
func (s *VocabularyService) AddWord(ctx context.Context, req AddWordRequest) (domain.WordEntry, error) {
	if err := validate.Validate(req); err != nil {
		return domain.WordEntry{}, err
	}

	entry, err := s.store.AddWord(ctx, req.Word, req.Translation)
	if err != nil {
		return domain.WordEntry{}, err
	}

	s.logger.Info("word saved", "word", entry.Word)
	return entry, nil
}

// RemoveWord drops every glossary entry for a word.
func (s *VocabularyService) RemoveWord(ctx context.Context, word string) error {
	if err := s.store.RemoveWord(ctx, word); err != nil {
		return err
	}
	s.logger.Info("word removed", "word", word)
	return nil
}

// GameResponse describes a quiz game and its next question.
type GameResponse struct {
	GameID    string      `json:"game_id"`
	Round     *quiz.Round `json:"round,omitempty"`
	Score     int         `json:"score"`
	Remaining int         `json:"remaining"`
	Over      bool        `json:"over"`
}

// StartQuiz begins a game over a snapshot of the current glossary.
// Fails with VALIDATION when the glossary is below the minimum size;
// nothing is mutated in that case.
func (s *VocabularyService) StartQuiz(ctx context.Context) (*GameResponse, error) {
	glossary, err := s.store.Glossary(ctx)
	if err != nil {
		return nil, err
	}

	game, err := s.quizzes.Start(glossary)
	if err != nil {
		return nil, err
	}

	round, err := game.NextRound()
	if err != nil {
		return nil, err
	}

	s.logger.Info("quiz started", "game_id", game.ID, "words", len(glossary))
	return &GameResponse{
		GameID:    game.ID,
		Round:     round,
		Score:     game.Score(),
		Remaining: game.Remaining(),
	}, nil
}

// QuizRound returns the pending question for a game.
func (s *VocabularyService) QuizRound(gameID string) (*GameResponse, error) {
	game, err := s.quizzes.Get(gameID)
	if err != nil {
		return nil, err
	}

	resp := &GameResponse{
		GameID:    game.ID,
		Score:     game.Score(),
		Remaining: game.Remaining(),
		Over:      game.Over(),
	}
	if resp.Over {
		return resp, nil
	}

	round, err := game.NextRound()
	if err != nil {
		return nil, err
	}
	resp.Round = round
	return resp, nil
}

// AnswerRequest is the option the player picked.
type AnswerRequest struct {
	Option string `json:"option" validate:"required"`
}

// AnswerResponse is the scored outcome plus the next question, when
// the game continues.
type AnswerResponse struct {
	Result quiz.Result `json:"result"`
	Next   *quiz.Round `json:"next,omitempty"`
}

// AnswerQuiz scores the pending round and advances the game.
func (s *VocabularyService) AnswerQuiz(gameID string, req AnswerRequest) (*AnswerResponse, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	game, err := s.quizzes.Get(gameID)
	if err != nil {
		return nil, err
	}

	result, err := game.SubmitAnswer(req.Option)
	if err != nil {
		return nil, err
	}

	resp := &AnswerResponse{Result: result}
	if !result.Over {
		next, err := game.NextRound()
		if err != nil {
			return nil, err
		}
		resp.Next = next
	} else {
		s.logger.Info("quiz finished", "game_id", gameID, "score", result.Score, "rounds", result.Rounds)
	}
	return resp, nil
}

// ReplayQuiz restarts a finished game over the same glossary snapshot.
func (s *VocabularyService) ReplayQuiz(gameID string) (*GameResponse, error) {
	game, err := s.quizzes.Get(gameID)
	if err != nil {
		return nil, err
	}

	game.Replay()
	round, err := game.NextRound()
	if err != nil {
		return nil, err
	}

	s.logger.Info("quiz replayed", "game_id", gameID)
	return &GameResponse{
		GameID:    game.ID,
		Round:     round,
		Score:     game.Score(),
		Remaining: game.Remaining(),
	}, nil
}

// EndQuiz abandons a game.
func (s *VocabularyService) EndQuiz(gameID string) {
	s.quizzes.Remove(gameID)
}
