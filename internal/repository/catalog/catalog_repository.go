package catalog

import (
	"context"
	"errors"
	"fmt"

	"sparkAgent/domain"
)

// ErrProductNotFound is returned for unknown product IDs.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository serves the fixed in-memory product catalog. The
// snapshot is immutable for the process lifetime; callers get copies
// and must never rely on mutating them.
type CatalogRepository struct {
	products []domain.Product
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		products: mockProducts(),
	}
}

func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)

	return out, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id int) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Product{}, ErrProductNotFound
}
