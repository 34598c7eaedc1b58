package services

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"sync"

	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

//go:generate mockgen -source=colors.go -destination=colors_mock.go -package=services

// ColorsKey is the session store key of the currency -> color map.
const ColorsKey = "currencyColors"

// KeyValueStore is the persistence the color and favorites caches write through.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error) // Returns models.ErrNotFound for unknown keys
	Set(ctx context.Context, key, value string) error    // Stores value under key
}

// ColorService hands out one display color per currency for the lifetime
// of the session. The store only seeds and mirrors the in-process map, so an
// unavailable store never changes a color already handed out.
type ColorService struct {
	store KeyValueStore

	mu     sync.Mutex
	rnd    *rand.Rand
	colors map[models.CurrencyCode]string
}

// NewColorService creates a ColorService drawing new colors from rnd.
func NewColorService(store KeyValueStore, rnd *rand.Rand) *ColorService {
	return &ColorService{store: store, rnd: rnd}
}

// ColorFor returns the color assigned to code, generating and persisting a
// new one on first use.
func (s *ColorService) ColorFor(ctx context.Context, code models.CurrencyCode) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.load(ctx)
	if color, ok := s.colors[code]; ok {
		return color
	}

	color := models.Color{
		R: uint8(s.rnd.Intn(255)),
		G: uint8(s.rnd.Intn(255)),
		B: uint8(s.rnd.Intn(255)),
	}.String()
	s.colors[code] = color

	data, err := json.Marshal(s.colors)
	if err != nil {
		logger.Log.Errorw("failed to encode currency colors", "currency", code, "error", err)
		return color
	}
	if err := s.store.Set(ctx, ColorsKey, string(data)); err != nil {
		logger.Log.Errorw("failed to persist currency colors", "currency", code, "error", err)
	}
	return color
}

// load reads the persisted map on first use. Must be called with mu held.
func (s *ColorService) load(ctx context.Context) {
	if s.colors != nil {
		return
	}
	s.colors = map[models.CurrencyCode]string{}

	raw, err := s.store.Get(ctx, ColorsKey)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.Log.Warnw("failed to load currency colors", "error", err)
		}
		return
	}
	if err := json.Unmarshal([]byte(raw), &s.colors); err != nil || s.colors == nil {
		logger.Log.Warnw("discarding malformed currency colors", "error", err)
		s.colors = map[models.CurrencyCode]string{}
	}
}
