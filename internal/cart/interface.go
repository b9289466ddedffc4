package cart

import "context"

// UseCase is the cart + wishlist surface.
type UseCase interface {
	// Cart
	AddCartItem(ctx context.Context, input AddCartItemInput) (CartItemOutput, error)
	ListCartItems(ctx context.Context, input ListCartItemsInput) (ListCartItemsOutput, error)
	DetailCartItem(ctx context.Context, id int) (CartItemOutput, error)
	UpdateCartItem(ctx context.Context, input UpdateCartItemInput) (CartItemOutput, error)
	RemoveCartItem(ctx context.Context, id int) (bool, error)

	// Wishlist
	AddWishlistItem(ctx context.Context, input AddWishlistItemInput) (WishlistItemOutput, error)
	ListWishlistItems(ctx context.Context) (ListWishlistItemsOutput, error)
	RemoveWishlistItem(ctx context.Context, id int) (bool, error)
}
