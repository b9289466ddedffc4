package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workout-core/internal/model"
	"workout-core/pkg/apperror"
)

const wishlistColumns = `id, customer_id, product_id, added_at`

// GetAll returns every wishlist item.
func (r *implWishlistRepository) GetAll(ctx context.Context) ([]model.WishlistItem, error) {
	items := []model.WishlistItem{}
	query := fmt.Sprintf(`SELECT %s FROM wishlist_items`, wishlistColumns)
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		r.l.Errorf(ctx, "cart/repository/postgre.GetAll wishlist_items: %v", err)
		return nil, apperror.Infrastructure(err, "list wishlist items")
	}
	return items, nil
}

// GetByID returns the wishlist item and whether it exists.
func (r *implWishlistRepository) GetByID(ctx context.Context, id int) (model.WishlistItem, bool, error) {
	var item model.WishlistItem
	query := fmt.Sprintf(`SELECT %s FROM wishlist_items WHERE id = $1`, wishlistColumns)
	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.WishlistItem{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "cart/repository/postgre.GetByID wishlist_item: %v", err)
		return model.WishlistItem{}, false, apperror.Infrastructure(err, "get wishlist item")
	}
	return item, true, nil
}

// Create inserts a new wishlist row.
func (r *implWishlistRepository) Create(ctx context.Context, item model.WishlistItem) (model.WishlistItem, error) {
	query := fmt.Sprintf(`
		INSERT INTO wishlist_items (customer_id, product_id, added_at)
		VALUES ($1, $2, NOW())
		RETURNING %s`, wishlistColumns)

	var created model.WishlistItem
	err := r.db.GetContext(ctx, &created, query, item.CustomerID, item.ProductID)
	if err != nil {
		r.l.Errorf(ctx, "cart/repository/postgre.Create wishlist_item: %v", err)
		return model.WishlistItem{}, apperror.Infrastructure(err, "create wishlist item")
	}
	return created, nil
}

// Update fully replaces the wishlist item matched by id.
func (r *implWishlistRepository) Update(ctx context.Context, item model.WishlistItem) (model.WishlistItem, error) {
	query := fmt.Sprintf(`
		UPDATE wishlist_items
		SET customer_id = $1, product_id = $2
		WHERE id = $3
		RETURNING %s`, wishlistColumns)

	var updated model.WishlistItem
	err := r.db.GetContext(ctx, &updated, query, item.CustomerID, item.ProductID, item.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.WishlistItem{}, apperror.NotFound("wishlist item %d not found", item.ID)
	}
	if err != nil {
		r.l.Errorf(ctx, "cart/repository/postgre.Update wishlist_item: %v", err)
		return model.WishlistItem{}, apperror.Infrastructure(err, "update wishlist item")
	}
	return updated, nil
}

// Delete removes the wishlist item and reports whether a row was removed.
func (r *implWishlistRepository) Delete(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM wishlist_items WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "cart/repository/postgre.Delete wishlist_item: %v", err)
		return false, apperror.Infrastructure(err, "delete wishlist item")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperror.Infrastructure(err, "delete wishlist item")
	}
	return affected > 0, nil
}

// GetAllFiltered: wishlist items opt out of filtering, so this always
// returns an empty slice regardless of the filter contents.
func (r *implWishlistRepository) GetAllFiltered(ctx context.Context, f model.CartItemFilter) ([]model.WishlistItem, error) {
	return []model.WishlistItem{}, nil
}
