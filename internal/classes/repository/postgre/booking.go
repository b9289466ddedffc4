package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workout-core/internal/model"
	"workout-core/pkg/apperror"
)

const bookingColumns = `id, session_id, user_id, calendar_event_id, created_at`

// CreateBooking inserts a new booking row.
func (r *implRepository) CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error) {
	query := fmt.Sprintf(`
		INSERT INTO bookings (session_id, user_id, calendar_event_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s`, bookingColumns)

	var created model.Booking
	err := r.db.GetContext(ctx, &created, query,
		booking.SessionID, booking.UserID, booking.CalendarEventID)
	if err != nil {
		r.l.Errorf(ctx, "classes/repository/postgre.CreateBooking: %v", err)
		return model.Booking{}, apperror.Infrastructure(err, "create booking")
	}
	return created, nil
}

// GetBookingByID returns the booking and whether it exists.
func (r *implRepository) GetBookingByID(ctx context.Context, id int) (model.Booking, bool, error) {
	var booking model.Booking
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)
	err := r.db.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "classes/repository/postgre.GetBookingByID: %v", err)
		return model.Booking{}, false, apperror.Infrastructure(err, "get booking")
	}
	return booking, true, nil
}

// ListBookingsByUser returns the user's bookings, newest first.
func (r *implRepository) ListBookingsByUser(ctx context.Context, userID int) ([]model.Booking, error) {
	bookings := []model.Booking{}
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`, bookingColumns)
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		r.l.Errorf(ctx, "classes/repository/postgre.ListBookingsByUser: %v", err)
		return nil, apperror.Infrastructure(err, "list bookings")
	}
	return bookings, nil
}

// DeleteBooking removes the booking and reports whether a row was removed.
func (r *implRepository) DeleteBooking(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "classes/repository/postgre.DeleteBooking: %v", err)
		return false, apperror.Infrastructure(err, "delete booking")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Infrastructure(err, "delete booking")
	}
	return affected > 0, nil
}
