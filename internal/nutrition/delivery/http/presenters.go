package http

import (
	"encoding/json"

	"workout-core/internal/model"
	"workout-core/internal/nutrition"
)

// --- Request DTOs ---

type createMealReq struct {
	Name           string `json:"name" binding:"required"`
	Type           string `json:"type"`
	CookingLevel   string `json:"cooking_level"`
	CookingTimeMin int    `json:"cooking_time_min" binding:"gte=0"`
	Calories       int    `json:"calories" binding:"gte=0"`
	Description    string `json:"description"`
	IngredientIDs  []int  `json:"ingredient_ids"`
}

func (r createMealReq) toInput() nutrition.CreateMealInput {
	return nutrition.CreateMealInput{
		Name:           r.Name,
		Type:           r.Type,
		CookingLevel:   r.CookingLevel,
		CookingTimeMin: r.CookingTimeMin,
		Calories:       r.Calories,
		Description:    r.Description,
		IngredientIDs:  r.IngredientIDs,
	}
}

type updateMealReq struct {
	ID             int    `json:"-"` // populated from URI param
	Name           string `json:"name" binding:"required"`
	Type           string `json:"type"`
	CookingLevel   string `json:"cooking_level"`
	CookingTimeMin int    `json:"cooking_time_min" binding:"gte=0"`
	Calories       int    `json:"calories" binding:"gte=0"`
	Description    string `json:"description"`
	IngredientIDs  []int  `json:"ingredient_ids"`
}

func (r updateMealReq) toInput() nutrition.UpdateMealInput {
	return nutrition.UpdateMealInput{
		ID:             r.ID,
		Name:           r.Name,
		Type:           r.Type,
		CookingLevel:   r.CookingLevel,
		CookingTimeMin: r.CookingTimeMin,
		Calories:       r.Calories,
		Description:    r.Description,
		IngredientIDs:  r.IngredientIDs,
	}
}

type listMealsReq struct {
	Type             *string `form:"type"`
	CookingLevel     *string `form:"cooking_level"`
	CookingTimeRange *string `form:"cooking_time_range"`
	CalorieRange     *string `form:"calorie_range"`
	MaxCookingTime   *int    `form:"max_cooking_time"`
}

func (r listMealsReq) toInput() nutrition.ListMealsInput {
	return nutrition.ListMealsInput{
		Filter: model.MealFilter{
			Type:             r.Type,
			CookingLevel:     r.CookingLevel,
			CookingTimeRange: r.CookingTimeRange,
			CalorieRange:     r.CalorieRange,
			MaxCookingTime:   r.MaxCookingTime,
		},
	}
}

// searchReq is the kind-tagged filter envelope accepted by the search
// endpoint. The filter payload is decoded late through model.DecodeFilter.
type searchReq struct {
	Kind   string          `json:"kind" binding:"required"`
	Filter json.RawMessage `json:"filter"`
}

type createIngredientReq struct {
	Name     string  `json:"name" binding:"required"`
	Calories int     `json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
}

func (r createIngredientReq) toInput() nutrition.CreateIngredientInput {
	return nutrition.CreateIngredientInput{
		Name:     r.Name,
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
	}
}

type updateIngredientReq struct {
	ID       int     `json:"-"` // populated from URI param
	Name     string  `json:"name" binding:"required"`
	Calories int     `json:"calories" binding:"gte=0"`
	Protein  float64 `json:"protein" binding:"gte=0"`
	Carbs    float64 `json:"carbs" binding:"gte=0"`
	Fat      float64 `json:"fat" binding:"gte=0"`
}

func (r updateIngredientReq) toInput() nutrition.UpdateIngredientInput {
	return nutrition.UpdateIngredientInput{
		ID:       r.ID,
		Name:     r.Name,
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
	}
}

// --- Response DTOs ---

type mealResp struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	CookingLevel   string `json:"cooking_level"`
	CookingTimeMin int    `json:"cooking_time_min"`
	Calories       int    `json:"calories"`
	Description    string `json:"description"`
	IngredientIDs  []int  `json:"ingredient_ids"`
}

func newMealResp(m model.Meal) mealResp {
	return mealResp{
		ID:             m.ID,
		Name:           m.Name,
		Type:           m.Type,
		CookingLevel:   m.CookingLevel,
		CookingTimeMin: m.CookingTimeMin,
		Calories:       m.Calories,
		Description:    m.Description,
		IngredientIDs:  m.IngredientIDs,
	}
}

type listMealsResp struct {
	Meals []mealResp `json:"meals"`
	Total int        `json:"total"`
}

func (h *handler) newListMealsResp(out nutrition.ListMealsOutput) listMealsResp {
	meals := make([]mealResp, len(out.Meals))
	for i, m := range out.Meals {
		meals[i] = newMealResp(m)
	}
	return listMealsResp{Meals: meals, Total: out.Total}
}

type ingredientResp struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func newIngredientResp(i model.Ingredient) ingredientResp {
	return ingredientResp{
		ID:       i.ID,
		Name:     i.Name,
		Calories: i.Calories,
		Protein:  i.Protein,
		Carbs:    i.Carbs,
		Fat:      i.Fat,
	}
}

type listIngredientsResp struct {
	Ingredients []ingredientResp `json:"ingredients"`
	Total       int              `json:"total"`
}

func (h *handler) newListIngredientsResp(out nutrition.ListIngredientsOutput) listIngredientsResp {
	ingredients := make([]ingredientResp, len(out.Ingredients))
	for i, ing := range out.Ingredients {
		ingredients[i] = newIngredientResp(ing)
	}
	return listIngredientsResp{Ingredients: ingredients, Total: out.Total}
}

type deleteResp struct {
	Removed bool `json:"removed"`
}
