package usecase

import (
	"context"

	"workout-core/internal/cart"
	"workout-core/internal/model"
)

// AddCartItem persists a new cart item after resolving the product
// reference.
func (uc *implUseCase) AddCartItem(ctx context.Context, input cart.AddCartItemInput) (cart.CartItemOutput, error) {
	if input.Quantity <= 0 {
		return cart.CartItemOutput{}, cart.ErrInvalidQuantity
	}
	if _, found, err := uc.products.GetByID(ctx, input.ProductID); err != nil {
		uc.l.Errorf(ctx, "uc.AddCartItem GetByID product: %v", err)
		return cart.CartItemOutput{}, err
	} else if !found {
		return cart.CartItemOutput{}, cart.ErrUnknownProduct
	}

	item, err := uc.cartItems.Create(ctx, model.CartItem{
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddCartItem Create: %v", err)
		return cart.CartItemOutput{}, err
	}
	return cart.CartItemOutput{Item: item}, nil
}

// ListCartItems returns cart items matching the filter.
func (uc *implUseCase) ListCartItems(ctx context.Context, input cart.ListCartItemsInput) (cart.ListCartItemsOutput, error) {
	items, err := uc.cartItems.GetAllFiltered(ctx, input.Filter)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCartItems GetAllFiltered: %v", err)
		return cart.ListCartItemsOutput{}, err
	}
	return cart.ListCartItemsOutput{Items: items, Total: len(items)}, nil
}

// DetailCartItem returns a single cart item. ErrCartItemNotFound when missing.
func (uc *implUseCase) DetailCartItem(ctx context.Context, id int) (cart.CartItemOutput, error) {
	item, found, err := uc.cartItems.GetByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailCartItem GetByID: %v", err)
		return cart.CartItemOutput{}, err
	}
	if !found {
		return cart.CartItemOutput{}, cart.ErrCartItemNotFound
	}
	return cart.CartItemOutput{Item: item}, nil
}

// UpdateCartItem fully replaces a cart item, re-validating the product
// reference.
func (uc *implUseCase) UpdateCartItem(ctx context.Context, input cart.UpdateCartItemInput) (cart.CartItemOutput, error) {
	if input.Quantity <= 0 {
		return cart.CartItemOutput{}, cart.ErrInvalidQuantity
	}
	if _, found, err := uc.products.GetByID(ctx, input.ProductID); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCartItem GetByID product: %v", err)
		return cart.CartItemOutput{}, err
	} else if !found {
		return cart.CartItemOutput{}, cart.ErrUnknownProduct
	}

	item, err := uc.cartItems.Update(ctx, model.CartItem{
		ID:         input.ID,
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCartItem Update: %v", err)
		return cart.CartItemOutput{}, err
	}
	return cart.CartItemOutput{Item: item}, nil
}

// RemoveCartItem removes a cart item; removing an absent id reports false.
func (uc *implUseCase) RemoveCartItem(ctx context.Context, id int) (bool, error) {
	removed, err := uc.cartItems.Delete(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.RemoveCartItem Delete: %v", err)
		return false, err
	}
	return removed, nil
}
