package usecase

import (
	"context"

	"workout-core/internal/cart"
	"workout-core/internal/model"
)

// AddWishlistItem persists a wishlist entry after resolving the product.
func (uc *implUseCase) AddWishlistItem(ctx context.Context, input cart.AddWishlistItemInput) (cart.WishlistItemOutput, error) {
	if _, found, err := uc.products.GetByID(ctx, input.ProductID); err != nil {
		uc.l.Errorf(ctx, "uc.AddWishlistItem GetByID product: %v", err)
		return cart.WishlistItemOutput{}, err
	} else if !found {
		return cart.WishlistItemOutput{}, cart.ErrUnknownProduct
	}

	item, err := uc.wishlistItems.Create(ctx, model.WishlistItem{
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddWishlistItem Create: %v", err)
		return cart.WishlistItemOutput{}, err
	}
	return cart.WishlistItemOutput{Item: item}, nil
}

// ListWishlistItems returns every wishlist entry.
func (uc *implUseCase) ListWishlistItems(ctx context.Context) (cart.ListWishlistItemsOutput, error) {
	items, err := uc.wishlistItems.GetAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListWishlistItems GetAll: %v", err)
		return cart.ListWishlistItemsOutput{}, err
	}
	return cart.ListWishlistItemsOutput{Items: items, Total: len(items)}, nil
}

// RemoveWishlistItem removes a wishlist entry.
func (uc *implUseCase) RemoveWishlistItem(ctx context.Context, id int) (bool, error) {
	removed, err := uc.wishlistItems.Delete(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RemoveWishlistItem Delete: %v", err)
		return false, err
	}
	return removed, nil
}
