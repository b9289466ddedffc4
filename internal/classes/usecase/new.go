package usecase

import (
	"workout-core/internal/classes"
	"workout-core/internal/classes/repository"
	"workout-core/pkg/log"
)

// implUseCase is the private implementation of classes.UseCase. The
// calendar is optional; nil disables event mirroring. calendarID is the
// target calendar for mirrored events; empty selects the account default.
type implUseCase struct {
	repo       repository.Repository
	calendar   classes.Calendar
	calendarID string
	l          log.Logger
}

// New creates a new classes UseCase implementation.
func New(repo repository.Repository, calendar classes.Calendar, calendarID string, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		calendar:   calendar,
		calendarID: calendarID,
		l:          l,
	}
}
