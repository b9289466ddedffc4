package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"workout-core/internal/model"
	"workout-core/pkg/apperror"
)

const cartItemColumns = `id, customer_id, product_id, quantity, added_at`

// GetAll returns every cart item.
func (r *implCartItemRepository) GetAll(ctx context.Context) ([]model.CartItem, error) {
	items := []model.CartItem{}
	query := fmt.Sprintf(`SELECT %s FROM cart_items`, cartItemColumns)
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		r.l.Errorf(ctx, "cart/repository/postgre.GetAll cart_items: %v", err)
		return nil, apperror.Infrastructure(err, "list cart items")
	}
	return items, nil
}

// GetByID returns the cart item and whether it exists.
func (r *implCartItemRepository) GetByID(ctx context.Context, id int) (model.CartItem, bool, error) {
	var item model.CartItem
	query := fmt.Sprintf(`SELECT %s FROM cart_items WHERE id = $1`, cartItemColumns)
	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CartItem{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "cart/repository/postgre.GetByID cart_item: %v", err)
		return model.CartItem{}, false, apperror.Infrastructure(err, "get cart item")
	}
	return item, true, nil
}

// Create inserts a new cart item row.
func (r *implCartItemRepository) Create(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	query := fmt.Sprintf(`
		INSERT INTO cart_items (customer_id, product_id, quantity, added_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s`, cartItemColumns)

	var created model.CartItem
	err := r.db.GetContext(ctx, &created, query, item.CustomerID, item.ProductID, item.Quantity)
	if err != nil {
		r.l.Errorf(ctx, "cart/repository/postgre.Create cart_item: %v", err)
		return model.CartItem{}, apperror.Infrastructure(err, "create cart item")
	}
	return created, nil
}

// Update fully replaces the cart item matched by id.
func (r *implCartItemRepository) Update(ctx context.Context, item model.CartItem) (model.CartItem, error) {
	query := fmt.Sprintf(`
		UPDATE cart_items
		SET customer_id = $1, product_id = $2, quantity = $3
		WHERE id = $4
		RETURNING %s`, cartItemColumns)

	var updated model.CartItem
	err := r.db.GetContext(ctx, &updated, query, item.CustomerID, item.ProductID, item.Quantity, item.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CartItem{}, apperror.NotFound("cart item %d not found", item.ID)
	}
	if err != nil {
		r.l.Errorf(ctx, "cart/repository/postgre.Update cart_item: %v", err)
		return model.CartItem{}, apperror.Infrastructure(err, "update cart item")
	}
	return updated, nil
}

// Delete removes the cart item and reports whether a row was removed.
func (r *implCartItemRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "cart/repository/postgre.Delete cart_item: %v", err)
		return false, apperror.Infrastructure(err, "delete cart item")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Infrastructure(err, "delete cart item")
	}
	return affected > 0, nil
}

// GetAllFiltered applies every set filter field as an AND condition.
func (r *implCartItemRepository) GetAllFiltered(ctx context.Context, f model.CartItemFilter) ([]model.CartItem, error) {
	if f.Empty() {
		return r.GetAll(ctx)
	}

	var conditions []string
	var args []any
	idx := 1
	if f.ProductID != nil {
		conditions = append(conditions, fmt.Sprintf("product_id = $%d", idx))
		args = append(args, *f.ProductID)
		idx++
	}
	if f.CustomerID != nil {
		conditions = append(conditions, fmt.Sprintf("customer_id = $%d", idx))
		args = append(args, *f.CustomerID)
	}

	query := fmt.Sprintf(`SELECT %s FROM cart_items WHERE %s`,
		cartItemColumns, strings.Join(conditions, " AND "))

	items := []model.CartItem{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		r.l.Errorf(ctx, "cart/repository/postgre.GetAllFiltered cart_items: %v", err)
		return nil, apperror.Infrastructure(err, "filter cart items")
	}
	return items, nil
}
