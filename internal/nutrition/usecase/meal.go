package usecase

import (
	"context"

	"workout-core/internal/model"
	"workout-core/internal/nutrition"
	"workout-core/internal/storage"
)

// CreateMeal persists a new meal after resolving every ingredient
// reference. A single missing ingredient fails the whole write, so no
// partial meal is ever stored.
func (uc *implUseCase) CreateMeal(ctx context.Context, input nutrition.CreateMealInput) (nutrition.MealOutput, error) {
	if err := uc.resolveIngredients(ctx, input.IngredientIDs); err != nil {
		return nutrition.MealOutput{}, err
	}

	meal, err := uc.meals.Create(ctx, model.Meal{
		Name:           input.Name,
		Type:           input.Type,
		CookingLevel:   input.CookingLevel,
		CookingTimeMin: input.CookingTimeMin,
		Calories:       input.Calories,
		Description:    input.Description,
		IngredientIDs:  input.IngredientIDs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateMeal Create: %v", err)
		return nutrition.MealOutput{}, err
	}
	return nutrition.MealOutput{Meal: meal}, nil
}

// ListMeals returns meals matching the filter; an empty filter lists
// everything.
func (uc *implUseCase) ListMeals(ctx context.Context, input nutrition.ListMealsInput) (nutrition.ListMealsOutput, error) {
	meals, err := uc.meals.GetAllFiltered(ctx, input.Filter)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMeals GetAllFiltered: %v", err)
		return nutrition.ListMealsOutput{}, err
	}
	return nutrition.ListMealsOutput{Meals: meals, Total: len(meals)}, nil
}

// DetailMeal returns a single meal. ErrMealNotFound when missing.
func (uc *implUseCase) DetailMeal(ctx context.Context, id int) (nutrition.MealOutput, error) {
	meal, found, err := uc.meals.GetByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailMeal GetByID: %v", err)
		return nutrition.MealOutput{}, err
	}
	if !found {
		return nutrition.MealOutput{}, nutrition.ErrMealNotFound
	}
	return nutrition.MealOutput{Meal: meal}, nil
}

// UpdateMeal fully replaces an existing meal, re-resolving every
// ingredient reference before touching the store.
func (uc *implUseCase) UpdateMeal(ctx context.Context, input nutrition.UpdateMealInput) (nutrition.MealOutput, error) {
	if err := uc.resolveIngredients(ctx, input.IngredientIDs); err != nil {
		return nutrition.MealOutput{}, err
	}

	meal, err := uc.meals.Update(ctx, model.Meal{
		ID:             input.ID,
		Name:           input.Name,
		Type:           input.Type,
		CookingLevel:   input.CookingLevel,
		CookingTimeMin: input.CookingTimeMin,
		Calories:       input.Calories,
		Description:    input.Description,
		IngredientIDs:  input.IngredientIDs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateMeal Update: %v", err)
		return nutrition.MealOutput{}, err
	}
	return nutrition.MealOutput{Meal: meal}, nil
}

// DeleteMeal removes a meal; deleting an absent id reports false.
func (uc *implUseCase) DeleteMeal(ctx context.Context, id int) (bool, error) {
	removed, err := uc.meals.Delete(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteMeal Delete: %v", err)
		return false, err
	}
	return removed, nil
}

// SearchMeals narrows a late-bound filter to the meal variant and
// delegates to the store.
func (uc *implUseCase) SearchMeals(ctx context.Context, filter storage.Filter) (nutrition.ListMealsOutput, error) {
	typed, err := storage.As[model.MealFilter](filter)
	if err != nil {
		return nutrition.ListMealsOutput{}, err
	}
	return uc.ListMeals(ctx, nutrition.ListMealsInput{Filter: typed})
}

// resolveIngredients checks that every referenced ingredient exists.
func (uc *implUseCase) resolveIngredients(ctx context.Context, ids []int) error {
	for _, id := range ids {
		if _, found, err := uc.ingredients.GetByID(ctx, id); err != nil {
			uc.l.Errorf(ctx, "uc.resolveIngredients GetByID %d: %v", id, err)
			return err
		} else if !found {
			return nutrition.ErrUnknownIngredient
		}
	}
	return nil
}
