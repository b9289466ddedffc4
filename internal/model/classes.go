package model

import "time"

// ClassSession is a scheduled fitness class.
type ClassSession struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Trainer     string    `db:"trainer"`
	StartsAt    time.Time `db:"starts_at"`
	DurationMin int       `db:"duration_min"`
	Capacity    int       `db:"capacity"`
	Booked      int       `db:"booked"`
}

// EntityID implements storage.Entity.
func (s ClassSession) EntityID() int { return s.ID }

// EndsAt returns the session end time.
func (s ClassSession) EndsAt() time.Time {
	return s.StartsAt.Add(time.Duration(s.DurationMin) * time.Minute)
}

// Booking records a user's spot in a class session.
type Booking struct {
	ID              int       `db:"id"`
	SessionID       int       `db:"session_id"`
	UserID          int       `db:"user_id"`
	CalendarEventID string    `db:"calendar_event_id"`
	CreatedAt       time.Time `db:"created_at"`
}

// EntityID implements storage.Entity.
func (b Booking) EntityID() int { return b.ID }
