package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/readmateapp/readmate-server/internal/http/response"
	"github.com/readmateapp/readmate-server/internal/service"
)

// OpenSessionRequest identifies the local book to read.
type OpenSessionRequest struct {
	BookID int64 `json:"book_id"`
}

// handleOpenSession opens a reading session at the last saved position.
func (s *Server) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	var req OpenSessionRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	session, err := s.reading.OpenSession(r.Context(), req.BookID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Created(w, session, s.logger)
}

// handleGetPage returns the session's current page.
func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	session, err := s.reading.GetPage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, session, s.logger)
}

// handleTurnPage moves the reading position.
func (s *Server) handleTurnPage(w http.ResponseWriter, r *http.Request) {
	var req service.TurnPageRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	session, err := s.reading.TurnPage(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, session, s.logger)
}

// handleFinish marks the session's book fully read.
func (s *Server) handleFinish(w http.ResponseWriter, r *http.Request) {
	resp, err := s.reading.Finish(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, resp, s.logger)
}

// handleToggleLine expands or collapses one line's translation.
func (s *Server) handleToggleLine(w http.ResponseWriter, r *http.Request) {
	var req service.ToggleLineRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	resp, err := s.reading.ToggleLine(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, resp, s.logger)
}

// handleLookupWord translates one tapped word.
func (s *Server) handleLookupWord(w http.ResponseWriter, r *http.Request) {
	var req service.WordLookupRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	resp, err := s.reading.LookupWord(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, resp, s.logger)
}

// handleCloseSession persists the final position and discards the session.
func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	if err := s.reading.CloseSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.NoContent(w)
}
