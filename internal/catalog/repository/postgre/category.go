package postgre

import (
	"context"
	"database/sql"
	"errors"

	"workout-core/internal/model"
	"workout-core/pkg/apperror"
)

// GetAll returns every category.
func (r *implCategoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	if err := r.db.SelectContext(ctx, &categories, `SELECT id, name FROM categories`); err != nil {
		r.l.Errorf(ctx, "catalog/repository/postgre.GetAll categories: %v", err)
		return nil, apperror.Infrastructure(err, "list categories")
	}
	return categories, nil
}

// GetByID returns the category and whether it exists.
func (r *implCategoryRepository) GetByID(ctx context.Context, id int) (model.Category, bool, error) {
	var category model.Category
	err := r.db.GetContext(ctx, &category, `SELECT id, name FROM categories WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "catalog/repository/postgre.GetByID category: %v", err)
		return model.Category{}, false, apperror.Infrastructure(err, "get category")
	}
	return category, true, nil
}

// Create inserts a new category row.
func (r *implCategoryRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	var created model.Category
	err := r.db.GetContext(ctx, &created,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name`, c.Name)
	if err != nil {
		r.l.Errorf(ctx, "catalog/repository/postgre.Create category: %v", err)
		return model.Category{}, apperror.Infrastructure(err, "create category")
	}
	return created, nil
}

// Update fully replaces the category matched by id.
func (r *implCategoryRepository) Update(ctx context.Context, c model.Category) (model.Category, error) {
	var updated model.Category
	err := r.db.GetContext(ctx, &updated,
		`UPDATE categories SET name = $1 WHERE id = $2 RETURNING id, name`, c.Name, c.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, apperror.NotFound("category %d not found", c.ID)
	}
	if err != nil {
		r.l.Errorf(ctx, "catalog/repository/postgre.Update category: %v", err)
		return model.Category{}, apperror.Infrastructure(err, "update category")
	}
	return updated, nil
}

// Delete removes the category and reports whether a row was removed.
func (r *implCategoryRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "catalog/repository/postgre.Delete category: %v", err)
		return false, apperror.Infrastructure(err, "delete category")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Infrastructure(err, "delete category")
	}
	return affected > 0, nil
}

// GetAllFiltered applies the category filter.
func (r *implCategoryRepository) GetAllFiltered(ctx context.Context, f model.CategoryFilter) ([]model.Category, error) {
	if f.Empty() {
		return r.GetAll(ctx)
	}

	categories := []model.Category{}
	err := r.db.SelectContext(ctx, &categories,
		`SELECT id, name FROM categories WHERE id = $1`, *f.CategoryID)
	if err != nil {
		r.l.Errorf(ctx, "catalog/repository/postgre.GetAllFiltered categories: %v", err)
		return nil, apperror.Infrastructure(err, "filter categories")
	}
	return categories, nil
}
