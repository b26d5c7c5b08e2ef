package service

import (
	"context"
	"log/slog"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/errors"
	"github.com/readmateapp/readmate-server/internal/reader"
	"github.com/readmateapp/readmate-server/internal/remote"
	"github.com/readmateapp/readmate-server/internal/store"
	"github.com/readmateapp/readmate-server/internal/store/catalog"
)

// BookService manages the combined shelf of local and remote books.
type BookService struct {
	catalog  *catalog.Store
	store    *store.Store
	remote   remote.Catalog
	sessions *reader.Registry
	logger   *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(cat *catalog.Store, st *store.Store, rem remote.Catalog, sessions *reader.Registry, logger *slog.Logger) *BookService {
	return &BookService{
		catalog:  cat,
		store:    st,
		remote:   rem,
		sessions: sessions,
		logger:   logger,
	}
}

// ShelfBook is one entry of the combined book listing.
type ShelfBook struct {
	ID         int64  `json:"id,omitempty"`
	CatalogID  string `json:"catalog_id,omitempty"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Level      string `json:"level"`
	Downloaded bool   `json:"downloaded"`
	Favorite   bool   `json:"favorite"`
	Progress   int    `json:"progress"`
}

// ShelfResponse is the combined listing plus remote availability.
type ShelfResponse struct {
	Books           []ShelfBook `json:"books"`
	RemoteAvailable bool        `json:"remote_available"`
}

// ListShelf merges local catalog books with the remote listing.
// Local books shadow remote entries with the same title. When the
// remote catalog is unreachable the shelf degrades to local books only
// and flags the outage instead of failing.
func (s *BookService) ListShelf(ctx context.Context) (*ShelfResponse, error) {
	local, err := s.catalog.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	progress, err := s.store.AllProgress(ctx)
	if err != nil {
		s.logger.Warn("load progress for shelf", "error", err)
		progress = domain.ProgressMap{}
	}
	favorites, err := s.store.Favorites(ctx)
	if err != nil {
		s.logger.Warn("load favorites for shelf", "error", err)
		favorites = domain.FavoriteList{}
	}

	resp := &ShelfResponse{Books: []ShelfBook{}, RemoteAvailable: true}
	seen := make(map[string]bool, len(local))
	for _, b := range local {
		seen[b.Title] = true
		resp.Books = append(resp.Books, ShelfBook{
			ID:         b.ID,
			Title:      b.Title,
			Author:     b.Author,
			Level:      b.Level,
			Downloaded: true,
			Favorite:   favorites.Contains(b.Title),
			Progress:   progress[b.Title].Percent,
		})
	}

	remoteBooks, err := s.remote.ListBooks(ctx)
	if err != nil {
		s.logger.Warn("remote catalog unavailable", "error", err)
		resp.RemoteAvailable = false
		return resp, nil
	}
	for _, b := range remoteBooks {
		if seen[b.Title] {
			continue
		}
		resp.Books = append(resp.Books, ShelfBook{
			CatalogID: b.ID,
			Title:     b.Title,
			Author:    b.Author,
			Level:     b.Level,
			Favorite:  favorites.Contains(b.Title),
			Progress:  progress[b.Title].Percent,
		})
	}
	return resp, nil
}

// BookDetail is a local book plus its reading state.
type BookDetail struct {
	Book     domain.Book     `json:"book"`
	Progress domain.Progress `json:"progress"`
	Favorite bool            `json:"favorite"`
}

// GetBook returns one local book with its reading state, text omitted.
func (s *BookService) GetBook(ctx context.Context, bookID int64) (*BookDetail, error) {
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	detail := &BookDetail{Book: *book}
	detail.Book.Text = ""

	progress, err := s.store.GetProgress(ctx, book.Title)
	if err != nil {
		s.logger.Warn("load progress", "title", book.Title, "error", err)
	} else {
		detail.Progress = progress
	}

	favorites, err := s.store.Favorites(ctx)
	if err != nil {
		s.logger.Warn("load favorites", "title", book.Title, "error", err)
	} else {
		detail.Favorite = favorites.Contains(book.Title)
	}
	return detail, nil
}

// AddBookRequest is a user-supplied book.
type AddBookRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author"`
	Level  string `json:"level" validate:"omitempty,cefr"`
	Text   string `json:"text" validate:"required"`
}

// AddBook stores a user-supplied book in the local catalog.
func (s *BookService) AddBook(ctx context.Context, req AddBookRequest) (*domain.Book, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	book := &domain.Book{
		Title:  req.Title,
		Author: req.Author,
		Level:  req.Level,
		Text:   req.Text,
	}
	if err := s.catalog.InsertBook(ctx, book); err != nil {
		return nil, err
	}

	if _, err := s.store.InitProgress(ctx, book.Title); err != nil {
		s.logger.Warn("init progress for new book", "title", book.Title, "error", err)
	}

	s.logger.Info("book added", "title", book.Title, "book_id", book.ID)
	return book, nil
}

// ImportText adds a book from the import drop directory.
// Satisfies the importer's catalog interface.
func (s *BookService) ImportText(ctx context.Context, title, text string) error {
	_, err := s.AddBook(ctx, AddBookRequest{Title: title, Text: text})
	return err
}

// DownloadBookRequest identifies a remote catalog book to download.
type DownloadBookRequest struct {
	CatalogID string `json:"catalog_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author"`
	Level     string `json:"level" validate:"omitempty,cefr"`
}

// DownloadBook fetches a remote book's text and stores it locally.
// Fails with ALREADY_EXISTS when the title is already downloaded and
// UNAVAILABLE when the catalog service cannot deliver the text; no
// partial book is committed on failure.
func (s *BookService) DownloadBook(ctx context.Context, req DownloadBookRequest) (*domain.Book, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	exists, err := s.catalog.BookExists(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.AlreadyExistsf("book %q already downloaded", req.Title)
	}

	text, err := s.remote.FetchBookText(ctx, req.CatalogID)
	if err != nil {
		return nil, err
	}

	book := &domain.Book{
		Title:      req.Title,
		Author:     req.Author,
		Level:      req.Level,
		Text:       text,
		FromServer: true,
	}
	if err := s.catalog.InsertBook(ctx, book); err != nil {
		return nil, err
	}

	if _, err := s.store.InitProgress(ctx, book.Title); err != nil {
		s.logger.Warn("init progress for download", "title", book.Title, "error", err)
	}

	s.logger.Info("book downloaded", "title", book.Title, "catalog_id", req.CatalogID)
	return book, nil
}

// DeleteBook removes a local book and cascades to its reading state:
// progress, favorite membership, and any open reading sessions.
func (s *BookService) DeleteBook(ctx context.Context, bookID int64) error {
	book, err := s.catalog.GetBook(ctx, bookID)
	if err != nil {
		return err
	}

	if err := s.catalog.DeleteBook(ctx, bookID); err != nil {
		return err
	}

	s.sessions.CloseForBook(book.Title)
	if err := s.store.RemoveProgress(ctx, book.Title); err != nil {
		s.logger.Warn("remove progress for deleted book", "title", book.Title, "error", err)
	}
	if err := s.store.RemoveFavorite(ctx, book.Title); err != nil {
		s.logger.Warn("remove favorite for deleted book", "title", book.Title, "error", err)
	}

	s.logger.Info("book deleted", "title", book.Title, "book_id", bookID)
	return nil
}
