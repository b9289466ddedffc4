package classes

import "errors"

var (
	ErrSessionNotFound = errors.New("class session not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrSessionFull     = errors.New("class session is fully booked")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)
