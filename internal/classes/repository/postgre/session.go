package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workout-core/internal/model"
	"workout-core/pkg/apperror"
)

const sessionColumns = `id, name, trainer, starts_at, duration_min, capacity, booked`

// GetSessions returns every class session ordered by start time.
func (r *implRepository) GetSessions(ctx context.Context) ([]model.ClassSession, error) {
	sessions := []model.ClassSession{}
	query := fmt.Sprintf(`SELECT %s FROM class_sessions ORDER BY starts_at`, sessionColumns)
	if err := r.db.SelectContext(ctx, &sessions, query); err != nil {
		r.l.Errorf(ctx, "classes/repository/postgre.GetSessions: %v", err)
		return nil, apperror.Infrastructure(err, "list class sessions")
	}
	return sessions, nil
}

// GetSessionByID returns the session and whether it exists.
func (r *implRepository) GetSessionByID(ctx context.Context, id int) (model.ClassSession, bool, error) {
	var session model.ClassSession
	query := fmt.Sprintf(`SELECT %s FROM class_sessions WHERE id = $1`, sessionColumns)
	err := r.db.GetContext(ctx, &session, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ClassSession{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "classes/repository/postgre.GetSessionByID: %v", err)
		return model.ClassSession{}, false, apperror.Infrastructure(err, "get class session")
	}
	return session, true, nil
}

// CreateSession inserts a new session row with zero bookings.
func (r *implRepository) CreateSession(ctx context.Context, session model.ClassSession) (model.ClassSession, error) {
	query := fmt.Sprintf(`
		INSERT INTO class_sessions (name, trainer, starts_at, duration_min, capacity, booked)
		VALUES ($1, $2, $3, $4, $5, 0)
		RETURNING %s`, sessionColumns)

	var created model.ClassSession
	err := r.db.GetContext(ctx, &created, query,
		session.Name, session.Trainer, session.StartsAt, session.DurationMin, session.Capacity)
	if err != nil {
		r.l.Errorf(ctx, "classes/repository/postgre.CreateSession: %v", err)
		return model.ClassSession{}, apperror.Infrastructure(err, "create class session")
	}
	return created, nil
}

// UpdateSession fully replaces the session matched by id. The booked
// counter is untouched; only the seat operations move it.
func (r *implRepository) UpdateSession(ctx context.Context, session model.ClassSession) (model.ClassSession, error) {
	query := fmt.Sprintf(`
		UPDATE class_sessions
		SET name = $1, trainer = $2, starts_at = $3, duration_min = $4, capacity = $5
		WHERE id = $6
		RETURNING %s`, sessionColumns)

	var updated model.ClassSession
	err := r.db.GetContext(ctx, &updated, query,
		session.Name, session.Trainer, session.StartsAt, session.DurationMin, session.Capacity, session.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ClassSession{}, apperror.NotFound("class session %d not found", session.ID)
	}
	if err != nil {
		r.l.Errorf(ctx, "classes/repository/postgre.UpdateSession: %v", err)
		return model.ClassSession{}, apperror.Infrastructure(err, "update class session")
	}
	return updated, nil
}

// DeleteSession removes the session and reports whether a row was removed.
func (r *implRepository) DeleteSession(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM class_sessions WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "classes/repository/postgre.DeleteSession: %v", err)
		return false, apperror.Infrastructure(err, "delete class session")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Infrastructure(err, "delete class session")
	}
	return affected > 0, nil
}

// ReserveSeat claims one seat. The guard in the WHERE clause makes the
// capacity check and the increment a single atomic statement.
func (r *implRepository) ReserveSeat(ctx context.Context, sessionID int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE class_sessions SET booked = booked + 1 WHERE id = $1 AND booked < capacity`,
		sessionID)
	if err != nil {
		r.l.Errorf(ctx, "classes/repository/postgre.ReserveSeat: %v", err)
		return false, apperror.Infrastructure(err, "reserve seat")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Infrastructure(err, "reserve seat")
	}
	return affected > 0, nil
}

// ReleaseSeat returns one previously reserved seat.
func (r *implRepository) ReleaseSeat(ctx context.Context, sessionID int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE class_sessions SET booked = booked - 1 WHERE id = $1 AND booked > 0`,
		sessionID)
	if err != nil {
		r.l.Errorf(ctx, "classes/repository/postgre.ReleaseSeat: %v", err)
		return apperror.Infrastructure(err, "release seat")
	}
	return nil
}
