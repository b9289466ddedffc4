package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"workout-core/internal/model"
	"workout-core/pkg/apperror"
)

const mealColumns = `id, name, type, cooking_level, cooking_time_min, calories, description`

// GetAll returns every meal with its ingredient references attached.
func (r *implMealRepository) GetAll(ctx context.Context) ([]model.Meal, error) {
	meals := []model.Meal{}
	query := fmt.Sprintf(`SELECT %s FROM meals`, mealColumns)
	if err := r.db.SelectContext(ctx, &meals, query); err != nil {
		r.l.Errorf(ctx, "nutrition/repository/postgre.GetAll meals: %v", err)
		return nil, apperror.Infrastructure(err, "list meals")
	}
	if err := r.attachIngredients(ctx, meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// GetByID returns the meal and whether it exists.
func (r *implMealRepository) GetByID(ctx context.Context, id int) (model.Meal, bool, error) {
	var meal model.Meal
	query := fmt.Sprintf(`SELECT %s FROM meals WHERE id = $1`, mealColumns)
	err := r.db.GetContext(ctx, &meal, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Meal{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "nutrition/repository/postgre.GetByID meal: %v", err)
		return model.Meal{}, false, apperror.Infrastructure(err, "get meal")
	}

	meals := []model.Meal{meal}
	if err := r.attachIngredients(ctx, meals); err != nil {
		return model.Meal{}, false, err
	}
	return meals[0], true, nil
}

// Create inserts the meal row and its ingredient links in one transaction,
// so a failure leaves nothing behind.
func (r *implMealRepository) Create(ctx context.Context, meal model.Meal) (model.Meal, error) {
	var created model.Meal
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		query := fmt.Sprintf(`
			INSERT INTO meals (name, type, cooking_level, cooking_time_min, calories, description)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING %s`, mealColumns)

		if err := tx.GetContext(ctx, &created, query,
			meal.Name, meal.Type, meal.CookingLevel, meal.CookingTimeMin, meal.Calories, meal.Description,
		); err != nil {
			return err
		}
		return r.insertIngredientLinks(ctx, tx, created.ID, meal.IngredientIDs)
	})
	if err != nil {
		r.l.Errorf(ctx, "nutrition/repository/postgre.Create meal: %v", err)
		return model.Meal{}, apperror.Infrastructure(err, "create meal")
	}
	created.IngredientIDs = meal.IngredientIDs
	return created, nil
}

// Update fully replaces the meal matched by id, ingredient links included.
func (r *implMealRepository) Update(ctx context.Context, meal model.Meal) (model.Meal, error) {
	var updated model.Meal
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		query := fmt.Sprintf(`
			UPDATE meals
			SET name = $1, type = $2, cooking_level = $3, cooking_time_min = $4, calories = $5, description = $6
			WHERE id = $7
			RETURNING %s`, mealColumns)

		if err := tx.GetContext(ctx, &updated, query,
			meal.Name, meal.Type, meal.CookingLevel, meal.CookingTimeMin, meal.Calories, meal.Description, meal.ID,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM meal_ingredients WHERE meal_id = $1`, meal.ID); err != nil {
			return err
		}
		return r.insertIngredientLinks(ctx, tx, meal.ID, meal.IngredientIDs)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return model.Meal{}, apperror.NotFound("meal %d not found", meal.ID)
	}
	if err != nil {
		r.l.Errorf(ctx, "nutrition/repository/postgre.Update meal: %v", err)
		return model.Meal{}, apperror.Infrastructure(err, "update meal")
	}
	updated.IngredientIDs = meal.IngredientIDs
	return updated, nil
}

// Delete removes the meal and reports whether a row was removed. Ingredient
// links go with it via ON DELETE CASCADE.
func (r *implMealRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM meals WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "nutrition/repository/postgre.Delete meal: %v", err)
		return false, apperror.Infrastructure(err, "delete meal")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Infrastructure(err, "delete meal")
	}
	return affected > 0, nil
}

// GetAllFiltered applies every set filter field as an AND condition. Bucket
// names resolve to numeric ranges; unrecognized buckets add no condition.
func (r *implMealRepository) GetAllFiltered(ctx context.Context, f model.MealFilter) ([]model.Meal, error) {
	if f.Empty() {
		return r.GetAll(ctx)
	}

	query, args := buildMealQuery(f)
	meals := []model.Meal{}
	if err := r.db.SelectContext(ctx, &meals, query, args...); err != nil {
		r.l.Errorf(ctx, "nutrition/repository/postgre.GetAllFiltered meals: %v", err)
		return nil, apperror.Infrastructure(err, "filter meals")
	}
	if err := r.attachIngredients(ctx, meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *implMealRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *implMealRepository) insertIngredientLinks(ctx context.Context, tx *sqlx.Tx, mealID int, ingredientIDs []int) error {
	for _, ingredientID := range ingredientIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO meal_ingredients (meal_id, ingredient_id) VALUES ($1, $2)`,
			mealID, ingredientID,
		); err != nil {
			return err
		}
	}
	return nil
}

// attachIngredients loads ingredient references for the given meals in one
// query and fills IngredientIDs in place.
func (r *implMealRepository) attachIngredients(ctx context.Context, meals []model.Meal) error {
	if len(meals) == 0 {
		return nil
	}

	ids := make([]int, len(meals))
	for i, m := range meals {
		ids[i] = m.ID
	}

	query, args, err := sqlx.In(`SELECT meal_id, ingredient_id FROM meal_ingredients WHERE meal_id IN (?)`, ids)
	if err != nil {
		return apperror.Infrastructure(err, "load meal ingredients")
	}
	query = r.db.Rebind(query)

	var links []struct {
		MealID       int `db:"meal_id"`
		IngredientID int `db:"ingredient_id"`
	}
	if err := r.db.SelectContext(ctx, &links, query, args...); err != nil {
		r.l.Errorf(ctx, "nutrition/repository/postgre.attachIngredients: %v", err)
		return apperror.Infrastructure(err, "load meal ingredients")
	}

	byMeal := make(map[int][]int, len(meals))
	for _, link := range links {
		byMeal[link.MealID] = append(byMeal[link.MealID], link.IngredientID)
	}
	for i := range meals {
		meals[i].IngredientIDs = byMeal[meals[i].ID]
	}
	return nil
}
