package usecase

import (
	"context"
	"fmt"

	"workout-core/internal/classes"
	"workout-core/internal/model"
	"workout-core/pkg/gcalendar"
)

// BookSession reserves a seat and records the booking. The seat reservation
// is atomic, so concurrent bookings can never oversell a session. Calendar
// mirroring is best effort: a calendar failure is logged, not surfaced.
func (uc *implUseCase) BookSession(ctx context.Context, input classes.BookSessionInput) (classes.BookingOutput, error) {
	session, found, err := uc.repo.GetSessionByID(ctx, input.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.BookSession GetSessionByID: %v", err)
		return classes.BookingOutput{}, err
	}
	if !found {
		return classes.BookingOutput{}, classes.ErrSessionNotFound
	}

	reserved, err := uc.repo.ReserveSeat(ctx, input.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.BookSession ReserveSeat: %v", err)
		return classes.BookingOutput{}, err
	}
	if !reserved {
		return classes.BookingOutput{}, classes.ErrSessionFull
	}

	eventID := uc.mirrorToCalendar(ctx, session, input.UserID)

	booking, err := uc.repo.CreateBooking(ctx, model.Booking{
		SessionID:       input.SessionID,
		UserID:          input.UserID,
		CalendarEventID: eventID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.BookSession CreateBooking: %v", err)
		// Give the seat back so the failed booking doesn't shrink the
		// class, and remove the event nobody holds a booking for.
		if relErr := uc.repo.ReleaseSeat(ctx, input.SessionID); relErr != nil {
			uc.l.Errorf(ctx, "uc.BookSession ReleaseSeat after failure: %v", relErr)
		}
		if eventID != "" {
			if delErr := uc.calendar.DeleteEvent(ctx, uc.calendarID, eventID); delErr != nil {
				uc.l.Warnf(ctx, "uc.BookSession DeleteEvent %s after failure: %v", eventID, delErr)
			}
		}
		return classes.BookingOutput{}, err
	}
	return classes.BookingOutput{Booking: booking}, nil
}

// ListUserBookings returns the user's bookings, newest first.
func (uc *implUseCase) ListUserBookings(ctx context.Context, userID int) (classes.ListBookingsOutput, error) {
	bookings, err := uc.repo.ListBookingsByUser(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListUserBookings ListBookingsByUser: %v", err)
		return classes.ListBookingsOutput{}, err
	}
	return classes.ListBookingsOutput{Bookings: bookings, Total: len(bookings)}, nil
}

// CancelBooking frees the seat and removes the booking. Cancelling an
// absent id reports false.
func (uc *implUseCase) CancelBooking(ctx context.Context, id int) (bool, error) {
	booking, found, err := uc.repo.GetBookingByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CancelBooking GetBookingByID: %v", err)
		return false, err
	}
	if !found {
		return false, nil
	}

	removed, err := uc.repo.DeleteBooking(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CancelBooking DeleteBooking: %v", err)
		return false, err
	}
	if !removed {
		return false, nil
	}

	if err := uc.repo.ReleaseSeat(ctx, booking.SessionID); err != nil {
		uc.l.Errorf(ctx, "uc.CancelBooking ReleaseSeat: %v", err)
		return false, err
	}

	if uc.calendar != nil && booking.CalendarEventID != "" {
		if err := uc.calendar.DeleteEvent(ctx, uc.calendarID, booking.CalendarEventID); err != nil {
			uc.l.Warnf(ctx, "uc.CancelBooking DeleteEvent %s: %v", booking.CalendarEventID, err)
		}
	}
	return true, nil
}

// mirrorToCalendar creates the calendar event for a booking and returns
// its id, or "" when the calendar is disabled or unavailable.
func (uc *implUseCase) mirrorToCalendar(ctx context.Context, session model.ClassSession, userID int) string {
	if uc.calendar == nil {
		return ""
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.EventInput{
		CalendarID: uc.calendarID,
		Title:      session.Name,
		Details:    fmt.Sprintf("Trainer: %s. Booked by user %d.", session.Trainer, userID),
		Start:      session.StartsAt,
		End:        session.EndsAt(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.BookSession CreateEvent: %v", err)
		return ""
	}
	return event.ID
}
