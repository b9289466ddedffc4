package postgre

import (
	"github.com/jmoiron/sqlx"

	"workout-core/internal/model"
	"workout-core/internal/storage"
	"workout-core/pkg/log"
)

// NewCartItems creates the PostgreSQL-backed cart item store.
func NewCartItems(db *sqlx.DB, l log.Logger) storage.Repository[model.CartItem, model.CartItemFilter] {
	if db == nil {
		panic("cart/repository/postgre: db is required")
	}
	return &implCartItemRepository{db: db, l: l}
}

// NewWishlistItems creates the PostgreSQL-backed wishlist store. Wishlist
// items opt out of filtering: GetAllFiltered returns an empty slice.
func NewWishlistItems(db *sqlx.DB, l log.Logger) storage.Repository[model.WishlistItem, model.CartItemFilter] {
	if db == nil {
		panic("cart/repository/postgre: db is required")
	}
	return &implWishlistRepository{db: db, l: l}
}

type implCartItemRepository struct {
	db *sqlx.DB
	l  log.Logger
}

type implWishlistRepository struct {
	db *sqlx.DB
	l  log.Logger
}
