package http

import (
	"workout-core/internal/nutrition"
	"workout-core/pkg/log"
)

type handler struct {
	l  log.Logger
	uc nutrition.UseCase
}

// New creates a new HTTP handler for the nutrition domain.
func New(l log.Logger, uc nutrition.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
