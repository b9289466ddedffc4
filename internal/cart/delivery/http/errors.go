package http

import (
	"workout-core/internal/cart"
	"workout-core/pkg/apperror"
)

// mapError translates domain errors into the apperror taxonomy the
// response layer knows how to render. Unknown errors pass through and
// surface as 500.
func (h *handler) mapError(err error) error {
	switch err {
	case cart.ErrCartItemNotFound:
		return apperror.NotFound("%s", err.Error())
	case cart.ErrUnknownProduct, cart.ErrInvalidQuantity:
		return apperror.Validation("%s", err.Error())
	default:
		return err
	}
}
