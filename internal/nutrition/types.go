package nutrition

import "workout-core/internal/model"

// --- UseCase Inputs ---

type CreateMealInput struct {
	Name           string
	Type           string
	CookingLevel   string
	CookingTimeMin int
	Calories       int
	Description    string
	IngredientIDs  []int
}

// UpdateMealInput fully replaces the stored meal, ingredient references
// included.
type UpdateMealInput struct {
	ID             int
	Name           string
	Type           string
	CookingLevel   string
	CookingTimeMin int
	Calories       int
	Description    string
	IngredientIDs  []int
}

type ListMealsInput struct {
	Filter model.MealFilter
}

type CreateIngredientInput struct {
	Name     string
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
}

type UpdateIngredientInput struct {
	ID       int
	Name     string
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
}

// --- UseCase Outputs ---

type MealOutput struct {
	Meal model.Meal
}

type ListMealsOutput struct {
	Meals []model.Meal
	Total int
}

type IngredientOutput struct {
	Ingredient model.Ingredient
}

type ListIngredientsOutput struct {
	Ingredients []model.Ingredient
	Total       int
}
