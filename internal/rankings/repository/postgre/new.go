package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"workout-core/internal/rankings/repository"
	"workout-core/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the rankings domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("rankings/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("rankings/repository/postgre.%s", method)
}
