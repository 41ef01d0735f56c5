package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAll(t *testing.T) {
	repo := NewCatalogRepository()

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 15)

	for _, p := range products {
		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.Price, 0.0)
		assert.Equal(t, "electronics", p.Category)
		assert.NotEmpty(t, p.Specifications["battery"])
		assert.Len(t, p.Reviews, 4)
	}
}

func TestFindAll_ReturnsCopy(t *testing.T) {
	repo := NewCatalogRepository()

	first, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "iPhone 13", second[0].Name)
}

func TestFindByID(t *testing.T) {
	repo := NewCatalogRepository()

	product, err := repo.FindByID(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, "Asus ROG Phone 7", product.Name)
	assert.Equal(t, "6000 mAh", product.Specifications["battery"])

	_, err = repo.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
