package usecase

import (
	"context"

	"workout-core/internal/model"
	"workout-core/internal/nutrition"
)

// CreateIngredient persists a new ingredient.
func (uc *implUseCase) CreateIngredient(ctx context.Context, input nutrition.CreateIngredientInput) (nutrition.IngredientOutput, error) {
	ingredient, err := uc.ingredients.Create(ctx, model.Ingredient{
		Name:     input.Name,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateIngredient Create: %v", err)
		return nutrition.IngredientOutput{}, err
	}
	return nutrition.IngredientOutput{Ingredient: ingredient}, nil
}

// ListIngredients returns every ingredient.
func (uc *implUseCase) ListIngredients(ctx context.Context) (nutrition.ListIngredientsOutput, error) {
	ingredients, err := uc.ingredients.GetAll(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListIngredients GetAll: %v", err)
		return nutrition.ListIngredientsOutput{}, err
	}
	return nutrition.ListIngredientsOutput{Ingredients: ingredients, Total: len(ingredients)}, nil
}

// DetailIngredient returns a single ingredient. ErrIngredientNotFound when
// missing.
func (uc *implUseCase) DetailIngredient(ctx context.Context, id int) (nutrition.IngredientOutput, error) {
	ingredient, found, err := uc.ingredients.GetByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailIngredient GetByID: %v", err)
		return nutrition.IngredientOutput{}, err
	}
	if !found {
		return nutrition.IngredientOutput{}, nutrition.ErrIngredientNotFound
	}
	return nutrition.IngredientOutput{Ingredient: ingredient}, nil
}

// UpdateIngredient fully replaces an existing ingredient.
func (uc *implUseCase) UpdateIngredient(ctx context.Context, input nutrition.UpdateIngredientInput) (nutrition.IngredientOutput, error) {
	ingredient, err := uc.ingredients.Update(ctx, model.Ingredient{
		ID:       input.ID,
		Name:     input.Name,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateIngredient Update: %v", err)
		return nutrition.IngredientOutput{}, err
	}
	return nutrition.IngredientOutput{Ingredient: ingredient}, nil
}

// DeleteIngredient removes an ingredient; deleting an absent id reports
// false.
func (uc *implUseCase) DeleteIngredient(ctx context.Context, id int) (bool, error) {
	removed, err := uc.ingredients.Delete(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteIngredient Delete: %v", err)
		return false, err
	}
	return removed, nil
}
