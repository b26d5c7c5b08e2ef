package reader

import (
	"sync"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/errors"
	"github.com/readmateapp/readmate-server/internal/id"
)

// Registry tracks open reading sessions by ID.
// Sessions are purely in-memory; a restart drops them all, which is
// fine because clients rebuild from stored progress on reopen.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Open creates and registers a session for a book text, restoring the
// page position from progress.
func (r *Registry) Open(bookTitle, text string, linesPerPage int, progress domain.Progress) *Session {
	session := NewSession(id.MustGenerate("read"), bookTitle, text, linesPerPage, progress)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return session
}

// Get returns the session with the given ID.
// Returns errors.ErrNotFound for unknown or already closed sessions.
func (r *Registry) Get(sessionID string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, errors.NotFoundf("reading session %s not found", sessionID)
	}
	return session, nil
}

// Close removes a session from the registry and returns it so the
// caller can persist its final position. Unknown IDs return ErrNotFound.
func (r *Registry) Close(sessionID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, errors.NotFoundf("reading session %s not found", sessionID)
	}
	delete(r.sessions, sessionID)
	return session, nil
}

// CloseForBook drops every open session for a book title. Used when a
// book is deleted so stale sessions cannot write progress back.
func (r *Registry) CloseForBook(bookTitle string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for sid, session := range r.sessions {
		if session.BookTitle == bookTitle {
			delete(r.sessions, sid)
		}
	}
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
