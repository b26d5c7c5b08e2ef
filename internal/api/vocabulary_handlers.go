package api

import (
	"encoding/json/v2"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/readmateapp/readmate-server/internal/http/response"
	"github.com/readmateapp/readmate-server/internal/service"
)

// handleListWords returns the glossary in insertion order.
func (s *Server) handleListWords(w http.ResponseWriter, r *http.Request) {
	glossary, err := s.vocabulary.ListWords(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, glossary, s.logger)
}

// handleAddWord saves a word and its translation.
func (s *Server) handleAddWord(w http.ResponseWriter, r *http.Request) {
	var req service.AddWordRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	entry, err := s.vocabulary.AddWord(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, entry, s.logger)
}

// handleRemoveWord drops every glossary entry for a word.
func (s *Server) handleRemoveWord(w http.ResponseWriter, r *http.Request) {
	word, err := url.PathUnescape(chi.URLParam(r, "word"))
	if err != nil {
		response.BadRequest(w, "Invalid word", s.logger)
		return
	}

	if err := s.vocabulary.RemoveWord(r.Context(), word); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.NoContent(w)
}

// handleStartQuiz begins a quiz over the current glossary.
func (s *Server) handleStartQuiz(w http.ResponseWriter, r *http.Request) {
	game, err := s.vocabulary.StartQuiz(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, game, s.logger)
}

// handleQuizRound returns the pending question for a game.
func (s *Server) handleQuizRound(w http.ResponseWriter, r *http.Request) {
	game, err := s.vocabulary.QuizRound(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, game, s.logger)
}

// handleAnswerQuiz scores the pending round.
func (s *Server) handleAnswerQuiz(w http.ResponseWriter, r *http.Request) {
	var req service.AnswerRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	resp, err := s.vocabulary.AnswerQuiz(chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, resp, s.logger)
}

// handleReplayQuiz restarts a finished game.
func (s *Server) handleReplayQuiz(w http.ResponseWriter, r *http.Request) {
	game, err := s.vocabulary.ReplayQuiz(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, game, s.logger)
}

// handleEndQuiz abandons a game.
func (s *Server) handleEndQuiz(w http.ResponseWriter, r *http.Request) {
	s.vocabulary.EndQuiz(chi.URLParam(r, "id"))
	response.NoContent(w)
}
