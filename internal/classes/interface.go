package classes

import (
	"context"

	"workout-core/pkg/gcalendar"
)

// UseCase is the class scheduling surface.
type UseCase interface {
	// Sessions
	CreateSession(ctx context.Context, input CreateSessionInput) (SessionOutput, error)
	ListSessions(ctx context.Context) (ListSessionsOutput, error)
	DetailSession(ctx context.Context, id int) (SessionOutput, error)
	UpdateSession(ctx context.Context, input UpdateSessionInput) (SessionOutput, error)
	DeleteSession(ctx context.Context, id int) (bool, error)

	// Bookings
	BookSession(ctx context.Context, input BookSessionInput) (BookingOutput, error)
	ListUserBookings(ctx context.Context, userID int) (ListBookingsOutput, error)
	CancelBooking(ctx context.Context, id int) (bool, error)
}

// Calendar mirrors bookings into an external calendar. A nil Calendar
// disables mirroring without touching the booking flow.
type Calendar interface {
	CreateEvent(ctx context.Context, input gcalendar.EventInput) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}
