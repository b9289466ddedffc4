package usecase

import (
	"workout-core/internal/model"
	"workout-core/internal/storage"
	"workout-core/pkg/log"
)

// implUseCase is the private implementation of catalog.UseCase. It
// composes one storage adapter per entity instead of extending a base
// repository type.
type implUseCase struct {
	products   storage.Repository[model.Product, model.ProductFilter]
	categories storage.Repository[model.Category, model.CategoryFilter]
	l          log.Logger
}

// New creates a new catalog UseCase implementation.
func New(
	products storage.Repository[model.Product, model.ProductFilter],
	categories storage.Repository[model.Category, model.CategoryFilter],
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		products:   products,
		categories: categories,
		l:          l,
	}
}
