// Package inmemory wires the generic in-memory store with meal matchers.
package inmemory

import (
	"strings"

	"workout-core/internal/model"
	"workout-core/internal/storage"
	"workout-core/internal/storage/inmemory"
	"workout-core/pkg/rangebucket"
)

// NewMeals creates the driverless meal store.
func NewMeals() storage.Repository[model.Meal, model.MealFilter] {
	return inmemory.New[model.Meal, model.MealFilter](
		func(m model.Meal, id int) model.Meal { m.ID = id; return m },
		matchMeal,
	)
}

// NewIngredients creates the driverless ingredient store. No matcher:
// ingredients opt out of filtering.
func NewIngredients() storage.Repository[model.Ingredient, model.MealFilter] {
	return inmemory.New[model.Ingredient, model.MealFilter](
		func(i model.Ingredient, id int) model.Ingredient { i.ID = id; return i },
		nil,
	)
}

func matchMeal(m model.Meal, f model.MealFilter) bool {
	if f.Type != nil && !strings.EqualFold(m.Type, *f.Type) {
		return false
	}
	if f.CookingLevel != nil && !strings.EqualFold(m.CookingLevel, *f.CookingLevel) {
		return false
	}
	if f.CookingTimeRange != nil && !rangebucket.CookingTime(*f.CookingTimeRange).Contains(m.CookingTimeMin) {
		return false
	}
	if f.CalorieRange != nil && !rangebucket.Calories(*f.CalorieRange).Contains(m.Calories) {
		return false
	}
	if f.MaxCookingTime != nil && m.CookingTimeMin > *f.MaxCookingTime {
		return false
	}
	if f.SearchTerm != nil {
		term := strings.ToLower(*f.SearchTerm)
		if !strings.Contains(strings.ToLower(m.Name), term) &&
			!strings.Contains(strings.ToLower(m.Description), term) {
			return false
		}
	}
	return true
}
