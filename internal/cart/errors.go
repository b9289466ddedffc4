package cart

import "errors"

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrUnknownProduct   = errors.New("referenced product does not exist")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
)
