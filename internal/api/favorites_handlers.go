package api

import (
	"encoding/json/v2"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/readmateapp/readmate-server/internal/http/response"
)

// ToggleFavoriteRequest names the book title to toggle.
type ToggleFavoriteRequest struct {
	Title string `json:"title"`
}

// handleListFavorites returns every favorite in the order added.
func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := s.favorites.List(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, favorites, s.logger)
}

// handleToggleFavorite flips a title's favorite membership.
func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	var req ToggleFavoriteRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}
	if req.Title == "" {
		response.BadRequest(w, "Title is required", s.logger)
		return
	}

	resp, err := s.favorites.Toggle(r.Context(), req.Title)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, resp, s.logger)
}

// handleRemoveFavorite drops a title from the favorites.
func (s *Server) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	title, err := url.PathUnescape(chi.URLParam(r, "title"))
	if err != nil {
		response.BadRequest(w, "Invalid title", s.logger)
		return
	}

	if err := s.favorites.Remove(r.Context(), title); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.NoContent(w)
}
