package usecase_test

import (
	"context"
	"errors"
	"testing"

	"workout-core/internal/model"
	"workout-core/internal/nutrition"
	nutritionInmem "workout-core/internal/nutrition/repository/inmemory"
	"workout-core/internal/nutrition/usecase"
	"workout-core/internal/storage"
	"workout-core/pkg/apperror"
	"workout-core/pkg/log"
)

func newUC(t *testing.T) (nutrition.UseCase, []int) {
	t.Helper()
	uc := usecase.New(nutritionInmem.NewMeals(), nutritionInmem.NewIngredients(), log.NewNoop())

	var ids []int
	for _, name := range []string{"Chicken Breast", "Rice", "Broccoli"} {
		out, err := uc.CreateIngredient(context.Background(), nutrition.CreateIngredientInput{Name: name, Calories: 100})
		if err != nil {
			t.Fatalf("seed ingredient %s: %v", name, err)
		}
		ids = append(ids, out.Ingredient.ID)
	}
	return uc, ids
}

func TestCreateMeal(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		uc, ingredientIDs := newUC(t)
		created, err := uc.CreateMeal(ctx, nutrition.CreateMealInput{
			Name: "Chicken Bowl", Type: "lunch", CookingLevel: "easy",
			CookingTimeMin: 25, Calories: 450, IngredientIDs: ingredientIDs,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		detail, err := uc.DetailMeal(ctx, created.Meal.ID)
		if err != nil {
			t.Fatalf("detail: %v", err)
		}
		if detail.Meal.Name != "Chicken Bowl" || len(detail.Meal.IngredientIDs) != 3 {
			t.Errorf("round trip mismatch: %+v", detail.Meal)
		}
	})

	t.Run("Unknown Ingredient Reference", func(t *testing.T) {
		uc, ingredientIDs := newUC(t)
		_, err := uc.CreateMeal(ctx, nutrition.CreateMealInput{
			Name:          "Ghost Meal",
			IngredientIDs: append(ingredientIDs, 999999),
		})
		if !errors.Is(err, nutrition.ErrUnknownIngredient) {
			t.Fatalf("expected ErrUnknownIngredient, got %v", err)
		}
		// Nothing persisted.
		out, err := uc.ListMeals(ctx, nutrition.ListMealsInput{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if out.Total != 0 {
			t.Errorf("expected no meals after failed create, got %d", out.Total)
		}
	})
}

func TestUpdateMeal(t *testing.T) {
	ctx := context.Background()
	uc, ingredientIDs := newUC(t)

	created, err := uc.CreateMeal(ctx, nutrition.CreateMealInput{
		Name: "Stir Fry", Type: "dinner", IngredientIDs: ingredientIDs,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("Full Replace", func(t *testing.T) {
		updated, err := uc.UpdateMeal(ctx, nutrition.UpdateMealInput{
			ID: created.Meal.ID, Name: "Veggie Stir Fry", Type: "dinner",
			IngredientIDs: ingredientIDs[:1],
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Meal.Name != "Veggie Stir Fry" || len(updated.Meal.IngredientIDs) != 1 {
			t.Errorf("replace mismatch: %+v", updated.Meal)
		}
	})

	t.Run("Unknown Ingredient Keeps Old Meal", func(t *testing.T) {
		_, err := uc.UpdateMeal(ctx, nutrition.UpdateMealInput{
			ID: created.Meal.ID, Name: "Broken", IngredientIDs: []int{999999},
		})
		if !errors.Is(err, nutrition.ErrUnknownIngredient) {
			t.Fatalf("expected ErrUnknownIngredient, got %v", err)
		}
		detail, err := uc.DetailMeal(ctx, created.Meal.ID)
		if err != nil {
			t.Fatalf("detail: %v", err)
		}
		if detail.Meal.Name == "Broken" {
			t.Error("failed update must not touch the stored meal")
		}
	})

	t.Run("Absent Meal", func(t *testing.T) {
		_, err := uc.UpdateMeal(ctx, nutrition.UpdateMealInput{ID: 999999, Name: "Nope"})
		if !apperror.IsKind(err, apperror.KindNotFound) {
			t.Errorf("expected KindNotFound, got %v", err)
		}
	})
}

func TestListMealsBucketed(t *testing.T) {
	ctx := context.Background()
	uc, ingredientIDs := newUC(t)

	seed := []struct {
		name     string
		minutes  int
		calories int
	}{
		{"Overnight Oats", 5, 280},
		{"Omelette", 15, 320},
		{"Pasta", 16, 600},
		{"Curry", 45, 550},
		{"Brisket", 46, 900},
		{"Feast Roast", 240, 1400},
	}
	for _, s := range seed {
		_, err := uc.CreateMeal(ctx, nutrition.CreateMealInput{
			Name: s.name, CookingTimeMin: s.minutes, Calories: s.calories,
			IngredientIDs: ingredientIDs[:1],
		})
		if err != nil {
			t.Fatalf("seed %s: %v", s.name, err)
		}
	}

	list := func(f model.MealFilter) []string {
		t.Helper()
		out, err := uc.ListMeals(ctx, nutrition.ListMealsInput{Filter: f})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		names := make([]string, len(out.Meals))
		for i, m := range out.Meals {
			names[i] = m.Name
		}
		return names
	}

	t.Run("Quick Includes Boundary", func(t *testing.T) {
		bucket := "quick"
		names := list(model.MealFilter{CookingTimeRange: &bucket})
		if len(names) != 2 {
			t.Fatalf("expected [Overnight Oats Omelette], got %v", names)
		}
	})

	t.Run("Medium Excludes Quick Boundary", func(t *testing.T) {
		bucket := "medium"
		names := list(model.MealFilter{CookingTimeRange: &bucket})
		if len(names) != 2 {
			t.Fatalf("expected [Pasta Curry], got %v", names)
		}
	})

	t.Run("Long Is Open Ended", func(t *testing.T) {
		bucket := "LONG"
		names := list(model.MealFilter{CookingTimeRange: &bucket})
		if len(names) != 2 {
			t.Fatalf("expected [Brisket Feast Roast], got %v", names)
		}
	})

	t.Run("High Calories", func(t *testing.T) {
		bucket := "high"
		names := list(model.MealFilter{CalorieRange: &bucket})
		if len(names) != 2 {
			t.Fatalf("expected the two meals above 600 kcal, got %v", names)
		}
	})

	t.Run("Unknown Bucket Passes Through", func(t *testing.T) {
		bucket := "instant"
		names := list(model.MealFilter{CookingTimeRange: &bucket})
		if len(names) != len(seed) {
			t.Fatalf("unknown bucket must not exclude anything, got %v", names)
		}
	})

	t.Run("Combined Buckets", func(t *testing.T) {
		timeBucket, calBucket := "long", "high"
		names := list(model.MealFilter{CookingTimeRange: &timeBucket, CalorieRange: &calBucket})
		if len(names) != 2 {
			t.Fatalf("expected [Brisket Feast Roast], got %v", names)
		}
	})
}

func TestSearchMeals(t *testing.T) {
	ctx := context.Background()

	t.Run("Wrong Filter Variant", func(t *testing.T) {
		uc, _ := newUC(t)
		var f storage.Filter = model.ProductFilter{}
		_, err := uc.SearchMeals(ctx, f)
		if !apperror.IsKind(err, apperror.KindTypeMismatch) {
			t.Errorf("expected KindTypeMismatch, got %v", err)
		}
	})

	t.Run("Matching Variant", func(t *testing.T) {
		uc, ingredientIDs := newUC(t)
		if _, err := uc.CreateMeal(ctx, nutrition.CreateMealInput{
			Name: "Protein Pancakes", IngredientIDs: ingredientIDs[:1],
		}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		term := "pancake"
		out, err := uc.SearchMeals(ctx, model.MealFilter{SearchTerm: &term})
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if out.Total != 1 {
			t.Errorf("expected 1 match, got %d", out.Total)
		}
	})
}

func TestDeleteMeal(t *testing.T) {
	ctx := context.Background()
	uc, ingredientIDs := newUC(t)

	created, err := uc.CreateMeal(ctx, nutrition.CreateMealInput{Name: "Soup", IngredientIDs: ingredientIDs[:1]})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	removed, err := uc.DeleteMeal(ctx, created.Meal.ID)
	if err != nil || !removed {
		t.Fatalf("delete: removed=%v err=%v", removed, err)
	}
	removed, err = uc.DeleteMeal(ctx, created.Meal.ID)
	if err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
	if removed {
		t.Error("second delete should report false, not an error")
	}
}
