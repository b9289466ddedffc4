// Package inmemory is the driverless classes store used in local mode and
// tests.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	repo "workout-core/internal/classes/repository"
	"workout-core/internal/model"
	"workout-core/pkg/apperror"
)

type implRepository struct {
	mu            sync.RWMutex
	sessions      map[int]model.ClassSession
	bookings      map[int]model.Booking
	nextSessionID int
	nextBookingID int
}

// New creates an in-memory classes Repository.
func New() repo.Repository {
	return &implRepository{
		sessions:      make(map[int]model.ClassSession),
		bookings:      make(map[int]model.Booking),
		nextSessionID: 1,
		nextBookingID: 1,
	}
}

func (r *implRepository) GetSessions(ctx context.Context) ([]model.ClassSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]model.ClassSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].StartsAt.Before(sessions[j].StartsAt) })
	return sessions, nil
}

func (r *implRepository) GetSessionByID(ctx context.Context, id int) (model.ClassSession, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	return session, ok, nil
}

func (r *implRepository) CreateSession(ctx context.Context, session model.ClassSession) (model.ClassSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session.ID = r.nextSessionID
	session.Booked = 0
	r.nextSessionID++
	r.sessions[session.ID] = session
	return session, nil
}

func (r *implRepository) UpdateSession(ctx context.Context, session model.ClassSession) (model.ClassSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions[session.ID]
	if !ok {
		return model.ClassSession{}, apperror.NotFound("class session %d not found", session.ID)
	}
	session.Booked = current.Booked
	r.sessions[session.ID] = session
	return session, nil
}

func (r *implRepository) DeleteSession(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false, nil
	}
	delete(r.sessions, id)
	return true, nil
}

func (r *implRepository) ReserveSeat(ctx context.Context, sessionID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok || session.Booked >= session.Capacity {
		return false, nil
	}
	session.Booked++
	r.sessions[sessionID] = session
	return true, nil
}

func (r *implRepository) ReleaseSeat(ctx context.Context, sessionID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok || session.Booked == 0 {
		return nil
	}
	session.Booked--
	r.sessions[sessionID] = session
	return nil
}

func (r *implRepository) CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = r.nextBookingID
	booking.CreatedAt = time.Now()
	r.nextBookingID++
	r.bookings[booking.ID] = booking
	return booking, nil
}

func (r *implRepository) GetBookingByID(ctx context.Context, id int) (model.Booking, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	return booking, ok, nil
}

func (r *implRepository) ListBookingsByUser(ctx context.Context, userID int) ([]model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := []model.Booking{}
	for _, b := range r.bookings {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].CreatedAt.After(bookings[j].CreatedAt) })
	return bookings, nil
}

func (r *implRepository) DeleteBooking(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return false, nil
	}
	delete(r.bookings, id)
	return true, nil
}
