package postgre

import (
	"github.com/jmoiron/sqlx"

	"workout-core/internal/model"
	"workout-core/internal/storage"
	"workout-core/pkg/log"
)

// NewMeals creates the PostgreSQL-backed meal store. Ingredient references
// live in the meal_ingredients join table and are written transactionally
// with the meal row.
func NewMeals(db *sqlx.DB, l log.Logger) storage.Repository[model.Meal, model.MealFilter] {
	if db == nil {
		panic("nutrition/repository/postgre: db is required")
	}
	return &implMealRepository{db: db, l: l}
}

// NewIngredients creates the PostgreSQL-backed ingredient store.
func NewIngredients(db *sqlx.DB, l log.Logger) storage.Repository[model.Ingredient, model.MealFilter] {
	if db == nil {
		panic("nutrition/repository/postgre: db is required")
	}
	return &implIngredientRepository{db: db, l: l}
}

type implMealRepository struct {
	db *sqlx.DB
	l  log.Logger
}

type implIngredientRepository struct {
	db *sqlx.DB
	l  log.Logger
}
