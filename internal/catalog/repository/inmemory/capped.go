package inmemory

import (
	"context"

	"workout-core/internal/model"
	"workout-core/internal/storage"
)

// capped wraps the product store to honor the Count field of
// ProductFilter, which caps result length rather than matching rows.
type capped struct {
	storage.Repository[model.Product, model.ProductFilter]
}

func (c capped) GetAllFiltered(ctx context.Context, f model.ProductFilter) ([]model.Product, error) {
	products, err := c.Repository.GetAllFiltered(ctx, f)
	if err != nil {
		return nil, err
	}
	// A non-positive count is no cap, same as the LIMIT clause the
	// postgres builder emits only for positive counts.
	if f.Count != nil && *f.Count > 0 && len(products) > *f.Count {
		products = products[:*f.Count]
	}
	return products, nil
}
