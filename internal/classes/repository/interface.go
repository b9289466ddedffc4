package repository

import (
	"context"

	"workout-core/internal/model"
)

// Repository is the data store for class sessions and bookings.
type Repository interface {
	// Sessions
	GetSessions(ctx context.Context) ([]model.ClassSession, error)
	GetSessionByID(ctx context.Context, id int) (model.ClassSession, bool, error)
	CreateSession(ctx context.Context, session model.ClassSession) (model.ClassSession, error)
	UpdateSession(ctx context.Context, session model.ClassSession) (model.ClassSession, error)
	DeleteSession(ctx context.Context, id int) (bool, error)

	// ReserveSeat atomically claims one seat on the session. It reports
	// false when the session is already full, without error.
	ReserveSeat(ctx context.Context, sessionID int) (bool, error)

	// ReleaseSeat returns one previously reserved seat.
	ReleaseSeat(ctx context.Context, sessionID int) error

	// Bookings
	CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error)
	GetBookingByID(ctx context.Context, id int) (model.Booking, bool, error)
	ListBookingsByUser(ctx context.Context, userID int) ([]model.Booking, error)
	DeleteBooking(ctx context.Context, id int) (bool, error)
}
