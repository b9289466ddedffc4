package nutrition

import (
	"context"

	"workout-core/internal/storage"
)

// UseCase is the nutrition (meals + ingredients) surface.
type UseCase interface {
	// Meals
	CreateMeal(ctx context.Context, input CreateMealInput) (MealOutput, error)
	ListMeals(ctx context.Context, input ListMealsInput) (ListMealsOutput, error)
	DetailMeal(ctx context.Context, id int) (MealOutput, error)
	UpdateMeal(ctx context.Context, input UpdateMealInput) (MealOutput, error)
	DeleteMeal(ctx context.Context, id int) (bool, error)

	// SearchMeals accepts a late-bound filter from the JSON search
	// boundary; a non-meal variant fails with a TypeMismatch error.
	SearchMeals(ctx context.Context, filter storage.Filter) (ListMealsOutput, error)

	// Ingredients
	CreateIngredient(ctx context.Context, input CreateIngredientInput) (IngredientOutput, error)
	ListIngredients(ctx context.Context) (ListIngredientsOutput, error)
	DetailIngredient(ctx context.Context, id int) (IngredientOutput, error)
	UpdateIngredient(ctx context.Context, input UpdateIngredientInput) (IngredientOutput, error)
	DeleteIngredient(ctx context.Context, id int) (bool, error)
}
