package http

import (
	"workout-core/internal/cart"
	"workout-core/pkg/log"
)

type handler struct {
	l  log.Logger
	uc cart.UseCase
}

// New creates a new HTTP handler for the cart domain.
func New(l log.Logger, uc cart.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
