package usecase

import (
	"workout-core/internal/model"
	"workout-core/internal/storage"
	"workout-core/pkg/log"
)

// implUseCase is the private implementation of cart.UseCase. The product
// store is a read-only collaborator used to resolve references.
type implUseCase struct {
	cartItems     storage.Repository[model.CartItem, model.CartItemFilter]
	wishlistItems storage.Repository[model.WishlistItem, model.CartItemFilter]
	products      storage.Repository[model.Product, model.ProductFilter]
	l             log.Logger
}

// New creates a new cart UseCase implementation.
func New(
	cartItems storage.Repository[model.CartItem, model.CartItemFilter],
	wishlistItems storage.Repository[model.WishlistItem, model.CartItemFilter],
	products storage.Repository[model.Product, model.ProductFilter],
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		cartItems:     cartItems,
		wishlistItems: wishlistItems,
		products:      products,
		l:             l,
	}
}
