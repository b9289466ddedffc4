package http

import (
	"workout-core/internal/classes"
	"workout-core/pkg/apperror"
)

// mapError translates domain errors into the apperror taxonomy the
// response layer knows how to render. Unknown errors pass through and
// surface as 500.
func (h *handler) mapError(err error) error {
	switch err {
	case classes.ErrSessionNotFound, classes.ErrBookingNotFound:
		return apperror.NotFound("%s", err.Error())
	case classes.ErrSessionFull, classes.ErrInvalidCapacity:
		return apperror.Validation("%s", err.Error())
	default:
		return err
	}
}
