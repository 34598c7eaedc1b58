package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// FavoritesKey is the durable store key of the favorites array.
const FavoritesKey = "favorites"

// DefaultFavorites is the favorites set of a store that was never written.
var DefaultFavorites = []models.CurrencyCode{models.PLN, models.USD}

// FavoritesService keeps the favorite currencies in a durable key/value store.
type FavoritesService struct {
	store KeyValueStore
	mu    sync.Mutex
}

// NewFavoritesService creates a new FavoritesService.
func NewFavoritesService(store KeyValueStore) *FavoritesService {
	return &FavoritesService{store: store}
}

// List returns the favorites in the order they were added.
func (s *FavoritesService) List(ctx context.Context) ([]models.CurrencyCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx)
}

// IsFavorite reports whether code is a favorite.
func (s *FavoritesService) IsFavorite(ctx context.Context, code models.CurrencyCode) (bool, error) {
	favorites, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(favorites, code), nil
}

// Toggle removes code when it is a favorite and appends it otherwise.
// It returns the updated favorites.
func (s *FavoritesService) Toggle(ctx context.Context, code models.CurrencyCode) ([]models.CurrencyCode, error) {
	if !code.IsWellFormed() {
		return nil, models.InvalidInputf("malformed currency code %q", code)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.read(ctx)
	if err != nil {
		return nil, err
	}

	if i := slices.Index(favorites, code); i >= 0 {
		favorites = slices.Delete(favorites, i, i+1)
	} else {
		favorites = append(favorites, code)
	}

	data, err := json.Marshal(favorites)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, FavoritesKey, string(data)); err != nil {
		logger.Log.Errorw("failed to save favorites", "currency", code, "error", err)
		return nil, fmt.Errorf("saving favorites: %w", err)
	}

	logger.Log.Infow("favorites toggled", "currency", code, "favorites", favorites)
	return favorites, nil
}

// Options builds a picker list: favorites first, then the remaining
// currencies in code order. exclude is left out of both parts and every
// code appears once.
func (s *FavoritesService) Options(
	ctx context.Context,
	currencies []models.CurrencyCode,
	exclude models.CurrencyCode,
) ([]models.CurrencyOption, error) {
	favorites, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	rest := slices.Clone(currencies)
	slices.Sort(rest)

	seen := map[models.CurrencyCode]bool{exclude: true}
	options := make([]models.CurrencyOption, 0, len(favorites)+len(rest))
	for _, code := range favorites {
		if seen[code] {
			continue
		}
		seen[code] = true
		options = append(options, models.CurrencyOption{Value: code, Label: code.String(), IsFavorite: true})
	}
	for _, code := range rest {
		if seen[code] {
			continue
		}
		seen[code] = true
		options = append(options, models.CurrencyOption{Value: code, Label: code.String()})
	}
	return options, nil
}

// read loads the favorites. Must be called with mu held.
func (s *FavoritesService) read(ctx context.Context) ([]models.CurrencyCode, error) {
	raw, err := s.store.Get(ctx, FavoritesKey)
	if errors.Is(err, models.ErrNotFound) {
		return slices.Clone(DefaultFavorites), nil
	}
	if err != nil {
		logger.Log.Errorw("failed to load favorites", "error", err)
		return nil, fmt.Errorf("loading favorites: %w", err)
	}

	// a stored null counts as never written
	var favorites []models.CurrencyCode
	if err := json.Unmarshal([]byte(raw), &favorites); err != nil || favorites == nil {
		if err != nil {
			logger.Log.Warnw("malformed favorites, using defaults", "error", err)
		}
		return slices.Clone(DefaultFavorites), nil
	}
	return favorites, nil
}
