package store

import (
	"path/filepath"
	"sync"

	"sportsterminal/internal/domain"
)

const favoritesFilename = "favorites.json"

type favoritesFile struct {
	Favorites []domain.Favorite `json:"favorites"`
}

// FavoritesFileStore persists pinned leagues to disk, in the order they were added.
type FavoritesFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFavoritesFileStore returns a FavoritesFileStore rooted at dir.
func NewFavoritesFileStore(dir string) *FavoritesFileStore {
	return &FavoritesFileStore{dir: dir}
}

// AddFavorite appends fav unless it is already present.
func (s *FavoritesFileStore) AddFavorite(fav domain.Favorite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, favoritesFilename)
	var f favoritesFile
	if err := readJSON(path, &f); err != nil {
		return err
	}
	for _, existing := range f.Favorites {
		if existing == fav {
			return nil
		}
	}
	f.Favorites = append(f.Favorites, fav)
	return writeJSON(path, f, 0o600)
}

// RemoveFavorite deletes fav and reports whether it was present.
func (s *FavoritesFileStore) RemoveFavorite(fav domain.Favorite) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, favoritesFilename)
	var f favoritesFile
	if err := readJSON(path, &f); err != nil {
		return false, err
	}
	kept := f.Favorites[:0]
	removed := false
	for _, existing := range f.Favorites {
		if existing == fav {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		return false, nil
	}
	f.Favorites = kept
	return true, writeJSON(path, f, 0o600)
}

// ListFavorites returns all favorites in insertion order.
func (s *FavoritesFileStore) ListFavorites() ([]domain.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var f favoritesFile
	if err := readJSON(filepath.Join(s.dir, favoritesFilename), &f); err != nil {
		return nil, err
	}
	return f.Favorites, nil
}

// Compile-time assertion that FavoritesFileStore implements domain.FavoriteStore.
var _ domain.FavoriteStore = (*FavoritesFileStore)(nil)
