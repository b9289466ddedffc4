package usecase

import (
	"workout-core/internal/model"
	"workout-core/internal/storage"
	"workout-core/pkg/log"
)

// implUseCase is the private implementation of nutrition.UseCase.
type implUseCase struct {
	meals       storage.Repository[model.Meal, model.MealFilter]
	ingredients storage.Repository[model.Ingredient, model.MealFilter]
	l           log.Logger
}

// New creates a new nutrition UseCase implementation.
func New(
	meals storage.Repository[model.Meal, model.MealFilter],
	ingredients storage.Repository[model.Ingredient, model.MealFilter],
	l log.Logger,
) *implUseCase {
	return &implUseCase{
		meals:       meals,
		ingredients: ingredients,
		l:           l,
	}
}
