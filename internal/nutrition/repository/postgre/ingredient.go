package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workout-core/internal/model"
	"workout-core/pkg/apperror"
)

const ingredientColumns = `id, name, calories, protein, carbs, fat`

// GetAll returns every ingredient.
func (r *implIngredientRepository) GetAll(ctx context.Context) ([]model.Ingredient, error) {
	ingredients := []model.Ingredient{}
	query := fmt.Sprintf(`SELECT %s FROM ingredients`, ingredientColumns)
	if err := r.db.SelectContext(ctx, &ingredients, query); err != nil {
		r.l.Errorf(ctx, "nutrition/repository/postgre.GetAll ingredients: %v", err)
		return nil, apperror.Infrastructure(err, "list ingredients")
	}
	return ingredients, nil
}

// GetByID returns the ingredient and whether it exists.
func (r *implIngredientRepository) GetByID(ctx context.Context, id int) (model.Ingredient, bool, error) {
	var ingredient model.Ingredient
	query := fmt.Sprintf(`SELECT %s FROM ingredients WHERE id = $1`, ingredientColumns)
	err := r.db.GetContext(ctx, &ingredient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Ingredient{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "nutrition/repository/postgre.GetByID ingredient: %v", err)
		return model.Ingredient{}, false, apperror.Infrastructure(err, "get ingredient")
	}
	return ingredient, true, nil
}

// Create inserts a new ingredient row.
func (r *implIngredientRepository) Create(ctx context.Context, ingredient model.Ingredient) (model.Ingredient, error) {
	query := fmt.Sprintf(`
		INSERT INTO ingredients (name, calories, protein, carbs, fat)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, ingredientColumns)

	var created model.Ingredient
	err := r.db.GetContext(ctx, &created, query,
		ingredient.Name, ingredient.Calories, ingredient.Protein, ingredient.Carbs, ingredient.Fat)
	if err != nil {
		r.l.Errorf(ctx, "nutrition/repository/postgre.Create ingredient: %v", err)
		return model.Ingredient{}, apperror.Infrastructure(err, "create ingredient")
	}
	return created, nil
}

// Update fully replaces the ingredient matched by id.
func (r *implIngredientRepository) Update(ctx context.Context, ingredient model.Ingredient) (model.Ingredient, error) {
	query := fmt.Sprintf(`
		UPDATE ingredients
		SET name = $1, calories = $2, protein = $3, carbs = $4, fat = $5
		WHERE id = $6
		RETURNING %s`, ingredientColumns)

	var updated model.Ingredient
	err := r.db.GetContext(ctx, &updated, query,
		ingredient.Name, ingredient.Calories, ingredient.Protein, ingredient.Carbs, ingredient.Fat, ingredient.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Ingredient{}, apperror.NotFound("ingredient %d not found", ingredient.ID)
	}
	if err != nil {
		r.l.Errorf(ctx, "nutrition/repository/postgre.Update ingredient: %v", err)
		return model.Ingredient{}, apperror.Infrastructure(err, "update ingredient")
	}
	return updated, nil
}

// Delete removes the ingredient and reports whether a row was removed.
func (r *implIngredientRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM ingredients WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "nutrition/repository/postgre.Delete ingredient: %v", err)
		return false, apperror.Infrastructure(err, "delete ingredient")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Infrastructure(err, "delete ingredient")
	}
	return affected > 0, nil
}

// GetAllFiltered: ingredients never override filtering, so the filtered
// path yields an empty slice regardless of the filter contents.
func (r *implIngredientRepository) GetAllFiltered(ctx context.Context, f model.MealFilter) ([]model.Ingredient, error) {
	return []model.Ingredient{}, nil
}
