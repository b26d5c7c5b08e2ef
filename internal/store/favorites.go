package store

import (
	"context"

	"github.com/readmateapp/readmate-server/internal/domain"
)

// Favorites returns every favorited book title in the order added.
func (s *Store) Favorites(ctx context.Context) (domain.FavoriteList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.readFavorites()
}

// ToggleFavorite adds the title if absent and removes it if present.
// Returns the resulting membership state.
func (s *Store) ToggleFavorite(ctx context.Context, bookTitle string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	defer s.lock(keyFavorites)()

	favorites, err := s.readFavorites()
	if err != nil {
		return false, err
	}

	if favorites.Contains(bookTitle) {
		if err := s.set(keyFavorites, favorites.Without(bookTitle)); err != nil {
			return false, err
		}
		return false, nil
	}

	favorites = append(favorites, bookTitle)
	if err := s.set(keyFavorites, favorites); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveFavorite deletes the title from the favorites list.
// Idempotent: removing an absent title is a no-op.
func (s *Store) RemoveFavorite(ctx context.Context, bookTitle string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer s.lock(keyFavorites)()

	favorites, err := s.readFavorites()
	if err != nil {
		return err
	}

	if !favorites.Contains(bookTitle) {
		return nil
	}
	return s.set(keyFavorites, favorites.Without(bookTitle))
}

// readFavorites loads the favorites blob, defaulting to an empty list.
func (s *Store) readFavorites() (domain.FavoriteList, error) {
	favorites := domain.FavoriteList{}
	if _, err := s.get(keyFavorites, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}
