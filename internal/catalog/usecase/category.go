package usecase

import (
	"context"

	"workout-core/internal/catalog"
	"workout-core/internal/model"
)

// CreateCategory persists a new category.
func (uc *implUseCase) CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (catalog.CategoryOutput, error) {
	category, err := uc.categories.Create(ctx, model.Category{Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCategory Create: %v", err)
		return catalog.CategoryOutput{}, err
	}
	return catalog.CategoryOutput{Category: category}, nil
}

// ListCategories returns categories matching the filter.
func (uc *implUseCase) ListCategories(ctx context.Context, input catalog.ListCategoriesInput) (catalog.ListCategoriesOutput, error) {
	categories, err := uc.categories.GetAllFiltered(ctx, input.Filter)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCategories GetAllFiltered: %v", err)
		return catalog.ListCategoriesOutput{}, err
	}
	return catalog.ListCategoriesOutput{Categories: categories, Total: len(categories)}, nil
}

// DetailCategory returns a single category. ErrCategoryNotFound when missing.
func (uc *implUseCase) DetailCategory(ctx context.Context, id int) (catalog.CategoryOutput, error) {
	category, found, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailCategory GetByID: %v", err)
		return catalog.CategoryOutput{}, err
	}
	if !found {
		return catalog.CategoryOutput{}, catalog.ErrCategoryNotFound
	}
	return catalog.CategoryOutput{Category: category}, nil
}

// UpdateCategory fully replaces an existing category.
func (uc *implUseCase) UpdateCategory(ctx context.Context, input catalog.UpdateCategoryInput) (catalog.CategoryOutput, error) {
	category, err := uc.categories.Update(ctx, model.Category{ID: input.ID, Name: input.Name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateCategory Update: %v", err)
		return catalog.CategoryOutput{}, err
	}
	return catalog.CategoryOutput{Category: category}, nil
}

// DeleteCategory removes a category; deleting an absent id reports false.
func (uc *implUseCase) DeleteCategory(ctx context.Context, id int) (bool, error) {
	removed, err := uc.categories.Delete(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteCategory Delete: %v", err)
		return false, err
	}
	return removed, nil
}
