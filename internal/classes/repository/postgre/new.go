package postgre

import (
	"github.com/jmoiron/sqlx"

	"workout-core/internal/classes/repository"
	"workout-core/pkg/log"
)

// New creates the PostgreSQL-backed classes repository.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("classes/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}
