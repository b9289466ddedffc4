package postgre_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"workout-core/internal/rankings/repository/postgre"
	"workout-core/pkg/apperror"
	"workout-core/pkg/log"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func bandColumns() []string {
	return []string{"id", "name", "min_points", "max_points", "color_r", "color_g", "color_b", "color_a", "image_path"}
}

func TestListBands(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	repo := postgre.New(db, log.NewNoop())

	t.Run("Ordered Rows", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM rank_definitions ORDER BY min_points ASC`).
			WillReturnRows(sqlmock.NewRows(bandColumns()).
				AddRow(1, "Beginner", 0, 1000, 128, 128, 128, 255, "beginner.png").
				AddRow(2, "Bronze", 1000, 2250, 205, 127, 50, 255, "bronze.png"))

		bands, err := repo.ListBands(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bands) != 2 || bands[0].Name != "Beginner" {
			t.Errorf("unexpected bands: %+v", bands)
		}
	})

	t.Run("Iteration Fault Wraps As Infrastructure", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM rank_definitions ORDER BY min_points ASC`).
			WillReturnRows(sqlmock.NewRows(bandColumns()).
				AddRow(1, "Beginner", 0, 1000, 128, 128, 128, 255, "beginner.png").
				RowError(0, sql.ErrConnDone))

		_, err := repo.ListBands(ctx)
		if !apperror.IsKind(err, apperror.KindInfrastructure) {
			t.Errorf("row iteration faults must wrap as KindInfrastructure, got %v", err)
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
