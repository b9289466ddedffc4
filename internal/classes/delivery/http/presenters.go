package http

import (
	"time"

	"workout-core/internal/classes"
	"workout-core/internal/model"
	"workout-core/pkg/response"
)

// --- Request DTOs ---

type createSessionReq struct {
	Name        string    `json:"name" binding:"required"`
	Trainer     string    `json:"trainer" binding:"required"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	DurationMin int       `json:"duration_min" binding:"required,gt=0"`
	Capacity    int       `json:"capacity" binding:"required,gt=0"`
}

func (r createSessionReq) toInput() classes.CreateSessionInput {
	return classes.CreateSessionInput{
		Name:        r.Name,
		Trainer:     r.Trainer,
		StartsAt:    r.StartsAt,
		DurationMin: r.DurationMin,
		Capacity:    r.Capacity,
	}
}

type updateSessionReq struct {
	ID          int       `json:"-"` // populated from URI param
	Name        string    `json:"name" binding:"required"`
	Trainer     string    `json:"trainer" binding:"required"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	DurationMin int       `json:"duration_min" binding:"required,gt=0"`
	Capacity    int       `json:"capacity" binding:"required,gt=0"`
}

func (r updateSessionReq) toInput() classes.UpdateSessionInput {
	return classes.UpdateSessionInput{
		ID:          r.ID,
		Name:        r.Name,
		Trainer:     r.Trainer,
		StartsAt:    r.StartsAt,
		DurationMin: r.DurationMin,
		Capacity:    r.Capacity,
	}
}

type bookSessionReq struct {
	SessionID int `json:"-"` // populated from URI param
	UserID    int `json:"user_id" binding:"required"`
}

func (r bookSessionReq) toInput() classes.BookSessionInput {
	return classes.BookSessionInput{SessionID: r.SessionID, UserID: r.UserID}
}

// --- Response DTOs ---

type sessionResp struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Trainer     string            `json:"trainer"`
	StartsAt    response.DateTime `json:"starts_at"`
	EndsAt      response.DateTime `json:"ends_at"`
	DurationMin int               `json:"duration_min"`
	Capacity    int               `json:"capacity"`
	Booked      int               `json:"booked"`
}

func newSessionResp(s model.ClassSession) sessionResp {
	return sessionResp{
		ID:          s.ID,
		Name:        s.Name,
		Trainer:     s.Trainer,
		StartsAt:    response.DateTime(s.StartsAt),
		EndsAt:      response.DateTime(s.EndsAt()),
		DurationMin: s.DurationMin,
		Capacity:    s.Capacity,
		Booked:      s.Booked,
	}
}

type listSessionsResp struct {
	Sessions []sessionResp `json:"sessions"`
	Total    int           `json:"total"`
}

func (h *handler) newListSessionsResp(out classes.ListSessionsOutput) listSessionsResp {
	sessions := make([]sessionResp, len(out.Sessions))
	for i, s := range out.Sessions {
		sessions[i] = newSessionResp(s)
	}
	return listSessionsResp{Sessions: sessions, Total: out.Total}
}

type bookingResp struct {
	ID              int               `json:"id"`
	SessionID       int               `json:"session_id"`
	UserID          int               `json:"user_id"`
	CalendarEventID string            `json:"calendar_event_id,omitempty"`
	CreatedAt       response.DateTime `json:"created_at"`
}

func newBookingResp(b model.Booking) bookingResp {
	return bookingResp{
		ID:              b.ID,
		SessionID:       b.SessionID,
		UserID:          b.UserID,
		CalendarEventID: b.CalendarEventID,
		CreatedAt:       response.DateTime(b.CreatedAt),
	}
}

type listBookingsResp struct {
	Bookings []bookingResp `json:"bookings"`
	Total    int           `json:"total"`
}

func (h *handler) newListBookingsResp(out classes.ListBookingsOutput) listBookingsResp {
	bookings := make([]bookingResp, len(out.Bookings))
	for i, b := range out.Bookings {
		bookings[i] = newBookingResp(b)
	}
	return listBookingsResp{Bookings: bookings, Total: out.Total}
}

type removeResp struct {
	Removed bool `json:"removed"`
}
