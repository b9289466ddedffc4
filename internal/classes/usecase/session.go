package usecase

import (
	"context"

	"workout-core/internal/classes"
	"workout-core/internal/model"
)

// CreateSession persists a new class session with an empty roster.
func (uc *implUseCase) CreateSession(ctx context.Context, input classes.CreateSessionInput) (classes.SessionOutput, error) {
	if input.Capacity <= 0 {
		return classes.SessionOutput{}, classes.ErrInvalidCapacity
	}

	session, err := uc.repo.CreateSession(ctx, model.ClassSession{
		Name:        input.Name,
		Trainer:     input.Trainer,
		StartsAt:    input.StartsAt,
		DurationMin: input.DurationMin,
		Capacity:    input.Capacity,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateSession CreateSession: %v", err)
		return classes.SessionOutput{}, err
	}
	return classes.SessionOutput{Session: session}, nil
}

// ListSessions returns every class session ordered by start time.
func (uc *implUseCase) ListSessions(ctx context.Context) (classes.ListSessionsOutput, error) {
	sessions, err := uc.repo.GetSessions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListSessions GetSessions: %v", err)
		return classes.ListSessionsOutput{}, err
	}
	return classes.ListSessionsOutput{Sessions: sessions, Total: len(sessions)}, nil
}

// DetailSession returns a single session. ErrSessionNotFound when missing.
func (uc *implUseCase) DetailSession(ctx context.Context, id int) (classes.SessionOutput, error) {
	session, found, err := uc.repo.GetSessionByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailSession GetSessionByID: %v", err)
		return classes.SessionOutput{}, err
	}
	if !found {
		return classes.SessionOutput{}, classes.ErrSessionNotFound
	}
	return classes.SessionOutput{Session: session}, nil
}

// UpdateSession fully replaces an existing session; the booked counter is
// preserved by the store.
func (uc *implUseCase) UpdateSession(ctx context.Context, input classes.UpdateSessionInput) (classes.SessionOutput, error) {
	if input.Capacity <= 0 {
		return classes.SessionOutput{}, classes.ErrInvalidCapacity
	}

	session, err := uc.repo.UpdateSession(ctx, model.ClassSession{
		ID:          input.ID,
		Name:        input.Name,
		Trainer:     input.Trainer,
		StartsAt:    input.StartsAt,
		DurationMin: input.DurationMin,
		Capacity:    input.Capacity,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateSession UpdateSession: %v", err)
		return classes.SessionOutput{}, err
	}
	return classes.SessionOutput{Session: session}, nil
}

// DeleteSession removes a session; deleting an absent id reports false.
func (uc *implUseCase) DeleteSession(ctx context.Context, id int) (bool, error) {
	removed, err := uc.repo.DeleteSession(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteSession DeleteSession: %v", err)
		return false, err
	}
	return removed, nil
}
