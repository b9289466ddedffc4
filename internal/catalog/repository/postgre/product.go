package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workout-core/internal/model"
	"workout-core/pkg/apperror"
)

const productColumns = `id, name, description, price, category_id, color, size, stock, created_at, updated_at`

// GetAll returns every product, unfiltered.
func (r *implProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products`, productColumns)

	products := []model.Product{}
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		r.l.Errorf(ctx, "catalog/repository/postgre.GetAll products: %v", err)
		return nil, apperror.Infrastructure(err, "list products")
	}
	return products, nil
}

// GetByID returns the product and whether it exists.
func (r *implProductRepository) GetByID(ctx context.Context, id int) (model.Product, bool, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	var product model.Product
	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "catalog/repository/postgre.GetByID product: %v", err)
		return model.Product{}, false, apperror.Infrastructure(err, "get product")
	}
	return product, true, nil
}

// Create inserts a new product row and returns the created entity.
func (r *implProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	query := fmt.Sprintf(`
		INSERT INTO products (name, description, price, category_id, color, size, stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s`, productColumns)

	var created model.Product
	err := r.db.GetContext(ctx, &created, query,
		p.Name, p.Description, p.Price, p.CategoryID, p.Color, p.Size, p.Stock)
	if err != nil {
		r.l.Errorf(ctx, "catalog/repository/postgre.Create product: %v", err)
		return model.Product{}, apperror.Infrastructure(err, "create product")
	}
	return created, nil
}

// Update fully replaces the product matched by id.
func (r *implProductRepository) Update(ctx context.Context, p model.Product) (model.Product, error) {
	query := fmt.Sprintf(`
		UPDATE products
		SET name = $1, description = $2, price = $3, category_id = $4, color = $5, size = $6, stock = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING %s`, productColumns)

	var updated model.Product
	err := r.db.GetContext(ctx, &updated, query,
		p.Name, p.Description, p.Price, p.CategoryID, p.Color, p.Size, p.Stock, p.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Product{}, apperror.NotFound("product %d not found", p.ID)
	}
	if err != nil {
		r.l.Errorf(ctx, "catalog/repository/postgre.Update product: %v", err)
		return model.Product{}, apperror.Infrastructure(err, "update product")
	}
	return updated, nil
}

// Delete removes the product and reports whether a row was removed.
func (r *implProductRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "catalog/repository/postgre.Delete product: %v", err)
		return false, apperror.Infrastructure(err, "delete product")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Infrastructure(err, "delete product")
	}
	return affected > 0, nil
}

// GetAllFiltered applies every set filter field as an AND condition.
func (r *implProductRepository) GetAllFiltered(ctx context.Context, f model.ProductFilter) ([]model.Product, error) {
	if f.Empty() {
		return r.GetAll(ctx)
	}

	where, limit, args := buildProductQuery(f)
	query := fmt.Sprintf(`SELECT %s FROM products WHERE %s%s`, productColumns, where, limit)

	products := []model.Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		r.l.Errorf(ctx, "catalog/repository/postgre.GetAllFiltered products: %v", err)
		return nil, apperror.Infrastructure(err, "filter products")
	}
	return products, nil
}
