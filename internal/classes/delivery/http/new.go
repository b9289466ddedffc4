package http

import (
	"workout-core/internal/classes"
	"workout-core/pkg/log"
)

type handler struct {
	l  log.Logger
	uc classes.UseCase
}

// New creates a new HTTP handler for the classes domain.
func New(l log.Logger, uc classes.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
