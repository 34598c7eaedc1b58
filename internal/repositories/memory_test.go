package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-rates/internal/models"
)

func TestMemoryKeyValueRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryKeyValueRepository()

	t.Run("missing key", func(t *testing.T) {
		_, err := repo.Get(ctx, "favorites")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "favorites", `["PLN","USD"]`))

		got, err := repo.Get(ctx, "favorites")
		require.NoError(t, err)
		assert.Equal(t, `["PLN","USD"]`, got)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "favorites", `[]`))

		got, err := repo.Get(ctx, "favorites")
		require.NoError(t, err)
		assert.Equal(t, `[]`, got)
	})
}

func TestMemoryKeyValueRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryKeyValueRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Set(ctx, "currencyColors", `{}`)
			_, _ = repo.Get(ctx, "currencyColors")
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, "currencyColors")
	require.NoError(t, err)
	assert.Equal(t, `{}`, got)
}
