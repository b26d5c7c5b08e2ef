package service

import (
	"context"
	"log/slog"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/errors"
	"github.com/readmateapp/readmate-server/internal/reader"
	"github.com/readmateapp/readmate-server/internal/store"
	"github.com/readmateapp/readmate-server/internal/store/catalog"
	"github.com/readmateapp/readmate-server/internal/translate"
)

// ReadingService runs reading sessions: opening books, turning pages,
// expanding line translations, and looking up words.
type ReadingService struct {
	catalog      *catalog.Store
	store        *store.Store
	sessions     *reader.Registry
	translator   translate.Translator
	linesPerPage int
	logger       *slog.Logger
}

// NewReadingService creates a new reading service.
func NewReadingService(cat *catalog.Store, st *store.Store, sessions *reader.Registry, translator translate.Translator, linesPerPage int, logger *slog.Logger) *ReadingService {
	return &ReadingService{
		catalog:      cat,
		store:        st,
		sessions:     sessions,
		translator:   translator,
		linesPerPage: linesPerPage,
		logger:       logger,
	}
}

// SessionResponse describes an open session and its current page.
type SessionResponse struct {
	SessionID string          `json:"session_id"`
	BookTitle string          `json:"book_title"`
	Page      reader.PageView `json:"page"`
}

// OpenSession loads a book's text and opens a session at the last
// saved position. Progress is initialized for first-time reads.
func (s *ReadingService) OpenSession(ctx context.Context, bookID int64) (*SessionResponse, error) {
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	progress, err := s.store.InitProgress(ctx, book.Title)
	if err != nil {
		s.logger.Warn("init progress on open", "title", book.Title, "error", err)
		progress = domain.Progress{}
	}

	session := s.sessions.Open(book.Title, book.Text, s.linesPerPage, progress)
	s.logger.Info("reading session opened",
		"session_id", session.ID,
		"title", book.Title,
		"page", progress.PageIndex)

	return &SessionResponse{
		SessionID: session.ID,
		BookTitle: book.Title,
		Page:      session.View(),
	}, nil
}

// GetPage returns the session's current page.
func (s *ReadingService) GetPage(ctx context.Context, sessionID string) (*SessionResponse, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionResponse{
		SessionID: session.ID,
		BookTitle: session.BookTitle,
		Page:      session.View(),
	}, nil
}

// TurnPageRequest moves the session position.
// Direction is "next" or "prev", or Page jumps to an absolute index.
type TurnPageRequest struct {
	Direction string `json:"direction" validate:"omitempty,oneof=next prev"`
	Page      *int   `json:"page" validate:"omitempty,gte=0"`
}

// TurnPage moves the position and persists the new progress.
// Navigation clamps at both ends; turning past the last page is not an
// error, the position just stays put.
func (s *ReadingService) TurnPage(ctx context.Context, sessionID string, req TurnPageRequest) (*SessionResponse, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var view reader.PageView
	switch {
	case req.Page != nil:
		view = session.GoToPage(*req.Page)
	case req.Direction == "prev":
		view = session.PrevPage()
	default:
		view = session.NextPage()
	}

	if err := s.store.SaveProgress(ctx, session.BookTitle, session.Progress()); err != nil {
		s.logger.Warn("save progress on page turn", "title", session.BookTitle, "error", err)
	}

	return &SessionResponse{
		SessionID: session.ID,
		BookTitle: session.BookTitle,
		Page:      view,
	}, nil
}

// FinishResponse acknowledges completing a book.
type FinishResponse struct {
	BookTitle string          `json:"book_title"`
	Progress  domain.Progress `json:"progress"`
	Finished  bool            `json:"finished"`
}

// Finish marks the session's book fully read: progress is forced to
// 100 percent at the final page and persisted. The session stays open
// so the reader can keep browsing.
func (s *ReadingService) Finish(ctx context.Context, sessionID string) (*FinishResponse, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	progress := session.Finish()
	if err := s.store.SaveProgress(ctx, session.BookTitle, progress); err != nil {
		return nil, err
	}

	s.logger.Info("book finished", "title", session.BookTitle)
	return &FinishResponse{
		BookTitle: session.BookTitle,
		Progress:  progress,
		Finished:  true,
	}, nil
}

// CloseSession persists the final position and discards the session.
func (s *ReadingService) CloseSession(ctx context.Context, sessionID string) error {
	session, err := s.sessions.Close(sessionID)
	if err != nil {
		return err
	}

	if err := s.store.SaveProgress(ctx, session.BookTitle, session.Progress()); err != nil {
		s.logger.Warn("save progress on close", "title", session.BookTitle, "error", err)
	}

	s.logger.Info("reading session closed", "session_id", sessionID, "title", session.BookTitle)
	return nil
}

// ToggleLineRequest addresses a line on the session's current page.
type ToggleLineRequest struct {
	LineIndex int `json:"line_index" validate:"gte=0"`
}

// ToggleLineResponse is the result of expanding or collapsing a line.
type ToggleLineResponse struct {
	LineIndex   int    `json:"line_index"`
	Translation string `json:"translation"`
	Expanded    bool   `json:"expanded"`
}

// ToggleLine expands or collapses one line's translation. The first
// expansion calls the translation backend against the reader's native
// language; collapsing and re-expanding within the session reuses the
// per-session cache.
func (s *ReadingService) ToggleLine(ctx context.Context, sessionID string, req ToggleLineRequest) (*ToggleLineResponse, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	targetLang, err := s.targetLanguage(ctx)
	if err != nil {
		return nil, err
	}

	translation, expanded, err := session.ToggleLine(ctx, req.LineIndex, func(ctx context.Context, text string) (string, error) {
		return s.translator.Translate(ctx, text, targetLang)
	})
	if err != nil {
		return nil, err
	}

	return &ToggleLineResponse{
		LineIndex:   req.LineIndex,
		Translation: translation,
		Expanded:    expanded,
	}, nil
}

// WordLookupRequest asks for one word's translation.
type WordLookupRequest struct {
	Word string `json:"word" validate:"required"`
}

// WordLookupResponse carries the translation and glossary membership.
type WordLookupResponse struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	InGlossary  bool   `json:"in_glossary"`
}

// LookupWord translates a tapped word. Words already in the glossary
// answer from it without an outbound call; the session remembers the
// selection so reopening the word panel is free.
func (s *ReadingService) LookupWord(ctx context.Context, sessionID string, req WordLookupRequest) (*WordLookupResponse, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	word := domain.CleanWord(req.Word)

	glossary, err := s.store.Glossary(ctx)
	if err != nil {
		s.logger.Warn("load glossary for lookup", "error", err)
		glossary = domain.Glossary{}
	}
	if entry, ok := glossary.Lookup(word); ok {
		session.SelectWord(entry.Word, entry.Translation)
		return &WordLookupResponse{Word: entry.Word, Translation: entry.Translation, InGlossary: true}, nil
	}

	if selected, translation, ok := session.SelectedWord(); ok && selected == word {
		return &WordLookupResponse{Word: word, Translation: translation}, nil
	}

	targetLang, err := s.targetLanguage(ctx)
	if err != nil {
		return nil, err
	}
	translation, err := s.translator.Translate(ctx, word, targetLang)
	if err != nil {
		return nil, err
	}

	session.SelectWord(word, translation)
	return &WordLookupResponse{Word: word, Translation: translation}, nil
}

// targetLanguage resolves the reader's stored native language.
// Fails with VALIDATION when none is set; translation has no sensible
// default target.
func (s *ReadingService) targetLanguage(ctx context.Context) (string, error) {
	lang, err := s.store.NativeLanguage(ctx)
	if err != nil {
		return "", err
	}
	if lang == "" {
		return "", errors.Validation("no native language set; pick one in settings first")
	}
	return lang, nil
}
