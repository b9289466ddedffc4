// Package inmemory wires the generic in-memory store with catalog matchers.
package inmemory

import (
	"strings"

	"workout-core/internal/model"
	"workout-core/internal/storage"
	"workout-core/internal/storage/inmemory"
)

// NewProducts creates the driverless product store.
func NewProducts() storage.Repository[model.Product, model.ProductFilter] {
	return capped{inmemory.New[model.Product, model.ProductFilter](
		func(p model.Product, id int) model.Product { p.ID = id; return p },
		matchProduct,
	)}
}

// NewCategories creates the driverless category store.
func NewCategories() storage.Repository[model.Category, model.CategoryFilter] {
	return inmemory.New[model.Category, model.CategoryFilter](
		func(c model.Category, id int) model.Category { c.ID = id; return c },
		func(c model.Category, f model.CategoryFilter) bool {
			return f.CategoryID == nil || c.ID == *f.CategoryID
		},
	)
}

func matchProduct(p model.Product, f model.ProductFilter) bool {
	if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
		return false
	}
	if f.ExcludeProductID != nil && p.ID == *f.ExcludeProductID {
		return false
	}
	if f.Color != nil && !strings.EqualFold(p.Color, *f.Color) {
		return false
	}
	if f.Size != nil && !strings.EqualFold(p.Size, *f.Size) {
		return false
	}
	if f.SearchTerm != nil {
		term := strings.ToLower(*f.SearchTerm)
		if !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			return false
		}
	}
	return true
}
