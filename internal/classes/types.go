package classes

import (
	"time"

	"workout-core/internal/model"
)

// --- UseCase Inputs ---

type CreateSessionInput struct {
	Name        string
	Trainer     string
	StartsAt    time.Time
	DurationMin int
	Capacity    int
}

// UpdateSessionInput fully replaces the stored session. The booked counter
// is owned by the booking flow and carries over unchanged.
type UpdateSessionInput struct {
	ID          int
	Name        string
	Trainer     string
	StartsAt    time.Time
	DurationMin int
	Capacity    int
}

type BookSessionInput struct {
	SessionID int
	UserID    int
}

// --- UseCase Outputs ---

type SessionOutput struct {
	Session model.ClassSession
}

type ListSessionsOutput struct {
	Sessions []model.ClassSession
	Total    int
}

type BookingOutput struct {
	Booking model.Booking
}

type ListBookingsOutput struct {
	Bookings []model.Booking
	Total    int
}
