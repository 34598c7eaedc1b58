package repositories

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

// MemoryKeyValueRepository keeps values in process memory. It backs the
// session store when Redis is not configured and the durable store when
// STORE_DRIVER=memory.
type MemoryKeyValueRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKeyValueRepository creates an empty in-memory store.
func NewMemoryKeyValueRepository() *MemoryKeyValueRepository {
	return &MemoryKeyValueRepository{data: make(map[string]string)}
}

// Get returns the value stored under key or models.ErrNotFound.
func (r *MemoryKeyValueRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	val, ok := r.data[key]
	if !ok {
		return "", models.ErrNotFound
	}
	return val, nil
}

// Set stores value under key, replacing any previous value.
func (r *MemoryKeyValueRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = value
	return nil
}
