package reader

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/errors"
)

// LineKey addresses one line of one page inside a session.
type LineKey struct {
	Page int `json:"page"`
	Line int `json:"line"`
}

// TranslateFunc translates one line of text. Sessions never talk to the
// translation backend directly; the caller supplies the function.
type TranslateFunc func(ctx context.Context, text string) (string, error)

// Session is the ephemeral in-memory state of one open book.
// It is rebuilt from stored progress when the book is opened and
// discarded when the reader closes it; nothing here is persisted
// except through explicit progress saves by the caller.
type Session struct {
	ID        string
	BookTitle string

	pagination *Pagination

	mu           sync.Mutex
	pageIndex    int
	translations map[LineKey]string
	selectedWord string
	selectedGlos string

	// flights serializes outbound translation calls per line so that
	// concurrent toggles of the same line share one backend call.
	flights singleflight.Group
}

// PageView is a snapshot of the session's current page.
type PageView struct {
	PageIndex    int               `json:"pageIndex"`
	TotalPages   int               `json:"totalPages"`
	Percent      int               `json:"percent"`
	Lines        []string          `json:"lines"`
	Translations map[int]string    `json:"translations,omitempty"`
}

// NewSession builds a session for a book text, restoring the page
// position from saved progress. Out-of-range positions are clamped.
func NewSession(id, bookTitle, text string, linesPerPage int, progress domain.Progress) *Session {
	pg := Paginate(text, linesPerPage)
	return &Session{
		ID:           id,
		BookTitle:    bookTitle,
		pagination:   pg,
		pageIndex:    pg.Clamp(progress.PageIndex),
		translations: make(map[LineKey]string),
	}
}

// TotalPages returns the page count of the underlying text.
func (s *Session) TotalPages() int {
	return s.pagination.TotalPages()
}

// PageIndex returns the current page position.
func (s *Session) PageIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageIndex
}

// Progress returns the position as persistable progress.
func (s *Session) Progress() domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Progress{
		Percent:   domain.PercentFor(s.pageIndex, s.pagination.TotalPages()),
		PageIndex: s.pageIndex,
	}
}

// View returns a snapshot of the current page, including any line
// translations already expanded on it.
func (s *Session) View() PageView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() PageView {
	view := PageView{
		PageIndex:  s.pageIndex,
		TotalPages: s.pagination.TotalPages(),
		Percent:    domain.PercentFor(s.pageIndex, s.pagination.TotalPages()),
		Lines:      s.pagination.Page(s.pageIndex),
	}
	for key, text := range s.translations {
		if key.Page != s.pageIndex {
			continue
		}
		if view.Translations == nil {
			view.Translations = make(map[int]string)
		}
		view.Translations[key.Line] = text
	}
	return view
}

// NextPage advances one page, clamped at the last page.
func (s *Session) NextPage() PageView {
	return s.goTo(func(i int) int { return i + 1 })
}

// PrevPage steps back one page, clamped at page zero.
func (s *Session) PrevPage() PageView {
	return s.goTo(func(i int) int { return i - 1 })
}

// GoToPage jumps to an arbitrary page, clamped into range.
func (s *Session) GoToPage(pageIndex int) PageView {
	return s.goTo(func(int) int { return pageIndex })
}

func (s *Session) goTo(next func(int) int) PageView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageIndex = s.pagination.Clamp(next(s.pageIndex))
	return s.viewLocked()
}

// Finish marks the book read to the end: the position jumps to the
// final page and the reported progress is forced to 100 percent.
func (s *Session) Finish() domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageIndex = s.pagination.LastPage()
	return domain.Progress{Percent: 100, PageIndex: s.pageIndex}
}

// ToggleLine expands or collapses the translation of one line on the
// current page. The first toggle issues a single backend call through
// translate and caches the result; toggling again drops the cached
// entry without a new call. Concurrent toggles of the same line share
// one in-flight call.
func (s *Session) ToggleLine(ctx context.Context, lineIndex int, translate TranslateFunc) (string, bool, error) {
	s.mu.Lock()
	pageIndex := s.pageIndex
	key := LineKey{Page: pageIndex, Line: lineIndex}
	if cached, ok := s.translations[key]; ok {
		delete(s.translations, key)
		s.mu.Unlock()
		return cached, false, nil
	}
	line, ok := s.pagination.Line(pageIndex, lineIndex)
	s.mu.Unlock()
	if !ok {
		return "", false, errors.Validationf("line %d out of range on page %d", lineIndex, pageIndex)
	}

	flightKey := fmt.Sprintf("%d:%d", key.Page, key.Line)
	result, err, _ := s.flights.Do(flightKey, func() (any, error) {
		return translate(ctx, line)
	})
	if err != nil {
		return "", false, err
	}
	translated := result.(string)

	s.mu.Lock()
	s.translations[key] = translated
	s.mu.Unlock()
	return translated, true, nil
}

// SelectWord records the word the reader tapped and its translation.
// The selection is transient presentation state, kept so reopening the
// word panel does not refetch.
func (s *Session) SelectWord(word, translation string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedWord = word
	s.selectedGlos = translation
}

// SelectedWord returns the current word selection, if any.
func (s *Session) SelectedWord() (word, translation string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedWord, s.selectedGlos, s.selectedWord != ""
}
