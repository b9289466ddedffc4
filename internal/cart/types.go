package cart

import "workout-core/internal/model"

// --- UseCase Inputs ---

type AddCartItemInput struct {
	CustomerID int
	ProductID  int
	Quantity   int
}

// UpdateCartItemInput fully replaces the stored item.
type UpdateCartItemInput struct {
	ID         int
	CustomerID int
	ProductID  int
	Quantity   int
}

type ListCartItemsInput struct {
	Filter model.CartItemFilter
}

type AddWishlistItemInput struct {
	CustomerID int
	ProductID  int
}

// --- UseCase Outputs ---

type CartItemOutput struct {
	Item model.CartItem
}

type ListCartItemsOutput struct {
	Items []model.CartItem
	Total int
}

type WishlistItemOutput struct {
	Item model.WishlistItem
}

type ListWishlistItemsOutput struct {
	Items []model.WishlistItem
	Total int
}
