package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/readmateapp/readmate-server/internal/http/response"
	"github.com/readmateapp/readmate-server/internal/service"
)

// handleListShelf returns the combined local and remote book listing.
func (s *Server) handleListShelf(w http.ResponseWriter, r *http.Request) {
	shelf, err := s.books.ListShelf(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, shelf, s.logger)
}

// handleGetBook returns one local book with its reading state.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := s.bookID(w, r)
	if !ok {
		return
	}

	detail, err := s.books.GetBook(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, detail, s.logger)
}

// handleAddBook stores a user-supplied book.
func (s *Server) handleAddBook(w http.ResponseWriter, r *http.Request) {
	var req service.AddBookRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	book, err := s.books.AddBook(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	book.Text = ""
	response.Created(w, book, s.logger)
}

// handleDownloadBook fetches a remote catalog book into the local catalog.
func (s *Server) handleDownloadBook(w http.ResponseWriter, r *http.Request) {
	var req service.DownloadBookRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	book, err := s.books.DownloadBook(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	book.Text = ""
	response.Created(w, book, s.logger)
}

// handleDeleteBook removes a local book and its reading state.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := s.bookID(w, r)
	if !ok {
		return
	}

	if err := s.books.DeleteBook(r.Context(), id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.NoContent(w)
}

// bookID parses the {id} route parameter.
func (s *Server) bookID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid book ID", s.logger)
		return 0, false
	}
	return id, true
}
