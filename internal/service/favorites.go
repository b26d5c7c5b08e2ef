package service

import (
	"context"
	"log/slog"

	"github.com/readmateapp/readmate-server/internal/domain"
	"github.com/readmateapp/readmate-server/internal/store"
	"github.com/readmateapp/readmate-server/internal/store/catalog"
)

// FavoritesService manages the reader's favorite books.
type FavoritesService struct {
	store   *store.Store
	catalog *catalog.Store
	logger  *slog.Logger
}

// NewFavoritesService creates a new favorites service.
func NewFavoritesService(st *store.Store, cat *catalog.Store, logger *slog.Logger) *FavoritesService {
	return &FavoritesService{store: st, catalog: cat, logger: logger}
}

// FavoriteBook is a favorited title joined with its local catalog
// entry when one exists. Favorites can outlive their catalog book when
// the title was favorited from the remote listing.
type FavoriteBook struct {
	Title      string `json:"title"`
	Author     string `json:"author,omitempty"`
	Level      string `json:"level,omitempty"`
	BookID     int64  `json:"book_id,omitempty"`
	Downloaded bool   `json:"downloaded"`
	Progress   int    `json:"progress"`
}

// List returns every favorite in the order added.
func (s *FavoritesService) List(ctx context.Context) ([]FavoriteBook, error) {
	titles, err := s.store.Favorites(ctx)
	if err != nil {
		return nil, err
	}

	progress, err := s.store.AllProgress(ctx)
	if err != nil {
		s.logger.Warn("load progress for favorites", "error", err)
		progress = domain.ProgressMap{}
	}

	favorites := make([]FavoriteBook, 0, len(titles))
	for _, title := range titles {
		fav := FavoriteBook{Title: title, Progress: progress[title].Percent}
		if book, err := s.catalog.GetBookByTitle(ctx, title); err == nil {
			fav.Author = book.Author
			fav.Level = book.Level
			fav.BookID = book.ID
			fav.Downloaded = true
		}
		favorites = append(favorites, fav)
	}
	return favorites, nil
}

// ToggleResponse reports the membership state after a toggle.
type ToggleResponse struct {
	Title    string `json:"title"`
	Favorite bool   `json:"favorite"`
}

// Toggle adds the title if absent, removes it if present.
func (s *FavoritesService) Toggle(ctx context.Context, title string) (*ToggleResponse, error) {
	present, err := s.store.ToggleFavorite(ctx, title)
	if err != nil {
		return nil, err
	}

	s.logger.Info("favorite toggled", "title", title, "favorite", present)
	return &ToggleResponse{Title: title, Favorite: present}, nil
}

// Remove drops a title from the favorites. Idempotent.
func (s *FavoritesService) Remove(ctx context.Context, title string) error {
	return s.store.RemoveFavorite(ctx, title)
}
