package postgre

import (
	"github.com/jmoiron/sqlx"

	"workout-core/internal/model"
	"workout-core/internal/storage"
	"workout-core/pkg/log"
)

// NewProducts creates the PostgreSQL-backed product store.
func NewProducts(db *sqlx.DB, l log.Logger) storage.Repository[model.Product, model.ProductFilter] {
	if db == nil {
		panic("catalog/repository/postgre: db is required")
	}
	return &implProductRepository{db: db, l: l}
}

// NewCategories creates the PostgreSQL-backed category store.
func NewCategories(db *sqlx.DB, l log.Logger) storage.Repository[model.Category, model.CategoryFilter] {
	if db == nil {
		panic("catalog/repository/postgre: db is required")
	}
	return &implCategoryRepository{db: db, l: l}
}

type implProductRepository struct {
	db *sqlx.DB
	l  log.Logger
}

type implCategoryRepository struct {
	db *sqlx.DB
	l  log.Logger
}
