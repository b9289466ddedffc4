package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workout-core/internal/classes"
	"workout-core/internal/classes/repository"
	classesInmem "workout-core/internal/classes/repository/inmemory"
	"workout-core/internal/classes/usecase"
	"workout-core/internal/model"
	"workout-core/pkg/gcalendar"
	"workout-core/pkg/log"
)

type mockCalendar struct {
	createFunc func(ctx context.Context, input gcalendar.EventInput) (*gcalendar.Event, error)
	deleteFunc func(ctx context.Context, calendarID, eventID string) error
	deleted    []string
}

func (m *mockCalendar) CreateEvent(ctx context.Context, input gcalendar.EventInput) (*gcalendar.Event, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return &gcalendar.Event{ID: "event-1", Title: input.Title}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, calendarID, eventID)
	}
	return nil
}

func newUC(t *testing.T, calendar classes.Calendar) (classes.UseCase, int) {
	t.Helper()
	uc := usecase.New(classesInmem.New(), calendar, "", log.NewNoop())

	out, err := uc.CreateSession(context.Background(), classes.CreateSessionInput{
		Name: "Morning HIIT", Trainer: "Alex",
		StartsAt: time.Now().Add(24 * time.Hour), DurationMin: 45, Capacity: 2,
	})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return uc, out.Session.ID
}

func TestCreateSession(t *testing.T) {
	ctx := context.Background()
	uc, _ := newUC(t, nil)

	_, err := uc.CreateSession(ctx, classes.CreateSessionInput{Name: "Empty Class", Capacity: 0})
	if !errors.Is(err, classes.ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity, got %v", err)
	}
}

func TestBookSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Fills To Capacity Then Rejects", func(t *testing.T) {
		uc, sessionID := newUC(t, nil)

		for user := 1; user <= 2; user++ {
			if _, err := uc.BookSession(ctx, classes.BookSessionInput{SessionID: sessionID, UserID: user}); err != nil {
				t.Fatalf("booking %d: %v", user, err)
			}
		}

		_, err := uc.BookSession(ctx, classes.BookSessionInput{SessionID: sessionID, UserID: 3})
		if !errors.Is(err, classes.ErrSessionFull) {
			t.Fatalf("expected ErrSessionFull, got %v", err)
		}

		detail, err := uc.DetailSession(ctx, sessionID)
		if err != nil {
			t.Fatalf("detail: %v", err)
		}
		if detail.Session.Booked != 2 {
			t.Errorf("expected booked=2, got %d", detail.Session.Booked)
		}
	})

	t.Run("Absent Session", func(t *testing.T) {
		uc, _ := newUC(t, nil)
		_, err := uc.BookSession(ctx, classes.BookSessionInput{SessionID: 999999, UserID: 1})
		if !errors.Is(err, classes.ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Mirrors To Calendar", func(t *testing.T) {
		cal := &mockCalendar{}
		uc, sessionID := newUC(t, cal)

		out, err := uc.BookSession(ctx, classes.BookSessionInput{SessionID: sessionID, UserID: 1})
		if err != nil {
			t.Fatalf("book: %v", err)
		}
		if out.Booking.CalendarEventID != "event-1" {
			t.Errorf("expected calendar event id on booking, got %q", out.Booking.CalendarEventID)
		}
	})

	t.Run("Targets Configured Calendar", func(t *testing.T) {
		var createdIn, deletedFrom string
		cal := &mockCalendar{
			createFunc: func(ctx context.Context, input gcalendar.EventInput) (*gcalendar.Event, error) {
				createdIn = input.CalendarID
				return &gcalendar.Event{ID: "event-1"}, nil
			},
			deleteFunc: func(ctx context.Context, calendarID, eventID string) error {
				deletedFrom = calendarID
				return nil
			},
		}
		uc := usecase.New(classesInmem.New(), cal, "trainers@example.com", log.NewNoop())

		created, err := uc.CreateSession(ctx, classes.CreateSessionInput{
			Name: "Spin", Trainer: "Kim",
			StartsAt: time.Now().Add(24 * time.Hour), DurationMin: 30, Capacity: 1,
		})
		if err != nil {
			t.Fatalf("seed session: %v", err)
		}

		out, err := uc.BookSession(ctx, classes.BookSessionInput{SessionID: created.Session.ID, UserID: 1})
		if err != nil {
			t.Fatalf("book: %v", err)
		}
		if createdIn != "trainers@example.com" {
			t.Errorf("event created in calendar %q, want the configured one", createdIn)
		}

		if _, err := uc.CancelBooking(ctx, out.Booking.ID); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if deletedFrom != "trainers@example.com" {
			t.Errorf("event deleted from calendar %q, want the configured one", deletedFrom)
		}
	})

	t.Run("Calendar Failure Does Not Block Booking", func(t *testing.T) {
		cal := &mockCalendar{
			createFunc: func(ctx context.Context, input gcalendar.EventInput) (*gcalendar.Event, error) {
				return nil, errors.New("calendar down")
			},
		}
		uc, sessionID := newUC(t, cal)

		out, err := uc.BookSession(ctx, classes.BookSessionInput{SessionID: sessionID, UserID: 1})
		if err != nil {
			t.Fatalf("book: %v", err)
		}
		if out.Booking.CalendarEventID != "" {
			t.Errorf("expected empty calendar event id, got %q", out.Booking.CalendarEventID)
		}
	})

	t.Run("Failed Booking Removes Mirrored Event", func(t *testing.T) {
		cal := &mockCalendar{}
		store := &failingBookingRepo{Repository: classesInmem.New(), err: errors.New("insert failed")}
		uc := usecase.New(store, cal, "", log.NewNoop())

		created, err := uc.CreateSession(ctx, classes.CreateSessionInput{
			Name: "Yoga", Trainer: "Sam",
			StartsAt: time.Now().Add(24 * time.Hour), DurationMin: 60, Capacity: 1,
		})
		if err != nil {
			t.Fatalf("seed session: %v", err)
		}

		if _, err := uc.BookSession(ctx, classes.BookSessionInput{SessionID: created.Session.ID, UserID: 1}); err == nil {
			t.Fatal("expected booking failure")
		}

		// Seat released and no orphaned calendar event.
		detail, err := uc.DetailSession(ctx, created.Session.ID)
		if err != nil {
			t.Fatalf("detail: %v", err)
		}
		if detail.Session.Booked != 0 {
			t.Errorf("expected booked=0 after failed booking, got %d", detail.Session.Booked)
		}
		if len(cal.deleted) != 1 || cal.deleted[0] != "event-1" {
			t.Errorf("expected mirrored event cleanup, got %v", cal.deleted)
		}
	})
}

// failingBookingRepo makes every booking insert fail.
type failingBookingRepo struct {
	repository.Repository
	err error
}

func (r *failingBookingRepo) CreateBooking(ctx context.Context, booking model.Booking) (model.Booking, error) {
	return model.Booking{}, r.err
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	cal := &mockCalendar{}
	uc, sessionID := newUC(t, cal)

	out, err := uc.BookSession(ctx, classes.BookSessionInput{SessionID: sessionID, UserID: 1})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	removed, err := uc.CancelBooking(ctx, out.Booking.ID)
	if err != nil || !removed {
		t.Fatalf("cancel: removed=%v err=%v", removed, err)
	}

	// Seat freed and calendar event cleaned up.
	detail, err := uc.DetailSession(ctx, sessionID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.Session.Booked != 0 {
		t.Errorf("expected booked=0 after cancel, got %d", detail.Session.Booked)
	}
	if len(cal.deleted) != 1 || cal.deleted[0] != "event-1" {
		t.Errorf("expected calendar event deletion, got %v", cal.deleted)
	}

	removed, err = uc.CancelBooking(ctx, out.Booking.ID)
	if err != nil {
		t.Fatalf("second cancel errored: %v", err)
	}
	if removed {
		t.Error("second cancel should report false, not an error")
	}
}

func TestListUserBookings(t *testing.T) {
	ctx := context.Background()
	uc, sessionID := newUC(t, nil)

	if _, err := uc.BookSession(ctx, classes.BookSessionInput{SessionID: sessionID, UserID: 1}); err != nil {
		t.Fatalf("book: %v", err)
	}
	if _, err := uc.BookSession(ctx, classes.BookSessionInput{SessionID: sessionID, UserID: 2}); err != nil {
		t.Fatalf("book: %v", err)
	}

	out, err := uc.ListUserBookings(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.Total != 1 {
		t.Errorf("expected 1 booking for user 1, got %d", out.Total)
	}
}
