package postgre_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"workout-core/internal/catalog/repository/postgre"
	"workout-core/internal/model"
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

func productRows(products ...model.Product) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "description", "price", "category_id", "color", "size", "stock", "created_at", "updated_at",
	})
	for _, p := range products {
		rows.AddRow(p.ID, p.Name, p.Description, p.Price, p.CategoryID, p.Color, p.Size, p.Stock, time.Now(), time.Now())
	}
	return rows
}

func TestProductGetAllFiltered(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	repo := postgre.NewProducts(db, log.NewNoop())

	t.Run("Category Condition", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM products WHERE category_id = \$1`).
			WithArgs(5).
			WillReturnRows(productRows(
				model.Product{ID: 1, CategoryID: 5},
				model.Product{ID: 2, CategoryID: 5},
			))

		cat := 5
		got, err := repo.GetAllFiltered(ctx, model.ProductFilter{CategoryID: &cat})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 products, got %d", len(got))
		}
	})

	t.Run("Empty Filter Falls Back To GetAll", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM products$`).
			WillReturnRows(productRows(model.Product{ID: 1}))

		got, err := repo.GetAllFiltered(ctx, model.ProductFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 product, got %d", len(got))
		}
	})

	t.Run("Color Matches Case Insensitively", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM products WHERE LOWER\(color\) = LOWER\(\$1\)`).
			WithArgs("Red").
			WillReturnRows(productRows(model.Product{ID: 1, Color: "red"}))

		color := "Red"
		got, err := repo.GetAllFiltered(ctx, model.ProductFilter{Color: &color})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 product, got %d", len(got))
		}
	})

	t.Run("Zero Count Keeps All Rows", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM products WHERE 1=1$`).
			WillReturnRows(productRows(
				model.Product{ID: 1},
				model.Product{ID: 2},
				model.Product{ID: 3},
			))

		count := 0
		got, err := repo.GetAllFiltered(ctx, model.ProductFilter{Count: &count})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("expected all 3 products with count=0, got %d", len(got))
		}
	})

	t.Run("Search Term And Count", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM products WHERE \(name ILIKE \$1 OR description ILIKE \$1\) LIMIT \$2`).
			WithArgs("%band%", 10).
			WillReturnRows(productRows())

		term, count := "band", 10
		got, err := repo.GetAllFiltered(ctx, model.ProductFilter{SearchTerm: &term, Count: &count})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty result, got %d", len(got))
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestProductUpdateNotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := postgre.NewProducts(db, log.NewNoop())

	mock.ExpectQuery(`UPDATE products SET (.+) WHERE id = \$8`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), model.Product{ID: 42})
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("expected KindNotFound, got %v", err)
	}
}

func TestProductDeleteAbsent(t *testing.T) {
	db, mock := newMock(t)
	repo := postgre.NewProducts(db, log.NewNoop())

	mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.Delete(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Error("expected false for absent id")
	}
}

func TestProductInfrastructureWrap(t *testing.T) {
	db, mock := newMock(t)
	repo := postgre.NewProducts(db, log.NewNoop())

	mock.ExpectQuery(`SELECT (.+) FROM products`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetAll(context.Background())
	if !apperror.IsKind(err, apperror.KindInfrastructure) {
		t.Errorf("storage faults must wrap as KindInfrastructure, got %v", err)
	}
}
