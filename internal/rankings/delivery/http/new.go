package http

import (
	"workout-core/internal/rankings"
	"workout-core/pkg/log"
)

type handler struct {
	l  log.Logger
	uc rankings.UseCase
}

// New creates a new HTTP handler for the rankings domain.
func New(l log.Logger, uc rankings.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
