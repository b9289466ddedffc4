// Package inmemory wires the generic in-memory store with cart matchers.
package inmemory

import (
	"workout-core/internal/model"
	"workout-core/internal/storage"
	"workout-core/internal/storage/inmemory"
)

// NewCartItems creates the driverless cart item store.
func NewCartItems() storage.Repository[model.CartItem, model.CartItemFilter] {
	return inmemory.New[model.CartItem, model.CartItemFilter](
		func(i model.CartItem, id int) model.CartItem { i.ID = id; return i },
		func(i model.CartItem, f model.CartItemFilter) bool {
			if f.ProductID != nil && i.ProductID != *f.ProductID {
				return false
			}
			if f.CustomerID != nil && i.CustomerID != *f.CustomerID {
				return false
			}
			return true
		},
	)
}

// NewWishlistItems creates the driverless wishlist store. No matcher:
// wishlist items opt out of filtering.
func NewWishlistItems() storage.Repository[model.WishlistItem, model.CartItemFilter] {
	return inmemory.New[model.WishlistItem, model.CartItemFilter](
		func(i model.WishlistItem, id int) model.WishlistItem { i.ID = id; return i },
		nil,
	)
}
