package seed_test

import (
	"testing"

	"shop/internal/adapters/out/memory"
	"shop/internal/adapters/out/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	products, err := seed.Catalog()

	require.NoError(t, err)
	assert.Len(t, products, 12)
	for _, p := range products {
		assert.True(t, p.IsActive(), p.Code().String())
	}
}

func TestLoad(t *testing.T) {
	ctx := t.Context()
	repo := memory.NewStore().Products()

	added, err := seed.Load(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 12, added)

	t.Run("should not add products twice", func(t *testing.T) {
		added, err := seed.Load(ctx, repo)

		require.NoError(t, err)
		assert.Zero(t, added)
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 12)
	})
}
