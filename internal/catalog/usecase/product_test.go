package usecase_test

import (
	"context"
	"errors"
	"testing"

	"workout-core/internal/catalog"
	catalogInmem "workout-core/internal/catalog/repository/inmemory"
	"workout-core/internal/catalog/usecase"
	"workout-core/internal/model"
	"workout-core/internal/storage"
	"workout-core/pkg/apperror"
	"workout-core/pkg/log"
)

func newUC(t *testing.T) (catalog.UseCase, int) {
	t.Helper()
	uc := usecase.New(catalogInmem.NewProducts(), catalogInmem.NewCategories(), log.NewNoop())

	out, err := uc.CreateCategory(context.Background(), catalog.CreateCategoryInput{Name: "Equipment"})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return uc, out.Category.ID
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		uc, catID := newUC(t)
		created, err := uc.CreateProduct(ctx, catalog.CreateProductInput{
			Name: "Resistance Band", Price: 9.99, CategoryID: catID, Color: "red", Size: "M",
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		detail, err := uc.DetailProduct(ctx, created.Product.ID)
		if err != nil {
			t.Fatalf("detail: %v", err)
		}
		if detail.Product.Name != "Resistance Band" || detail.Product.Color != "red" {
			t.Errorf("round trip mismatch: %+v", detail.Product)
		}
	})

	t.Run("Unknown Category Reference", func(t *testing.T) {
		uc, _ := newUC(t)
		_, err := uc.CreateProduct(ctx, catalog.CreateProductInput{Name: "Ghost", CategoryID: 999999})
		if !errors.Is(err, catalog.ErrUnknownCategory) {
			t.Fatalf("expected ErrUnknownCategory, got %v", err)
		}
		// Nothing persisted.
		out, err := uc.ListProducts(ctx, catalog.ListProductsInput{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if out.Total != 0 {
			t.Errorf("expected no products after failed create, got %d", out.Total)
		}
	})
}

func TestListProductsFiltered(t *testing.T) {
	ctx := context.Background()
	uc, catID := newUC(t)

	otherOut, err := uc.CreateCategory(ctx, catalog.CreateCategoryInput{Name: "Apparel"})
	if err != nil {
		t.Fatalf("seed second category: %v", err)
	}
	otherID := otherOut.Category.ID

	for i := 0; i < 3; i++ {
		if _, err := uc.CreateProduct(ctx, catalog.CreateProductInput{Name: "Dumbbell", CategoryID: catID}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := uc.CreateProduct(ctx, catalog.CreateProductInput{Name: "Shirt", CategoryID: otherID}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	out, err := uc.ListProducts(ctx, catalog.ListProductsInput{
		Filter: model.ProductFilter{CategoryID: &catID},
	})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if out.Total != 3 {
		t.Fatalf("expected exactly the 3 equipment products, got %d", out.Total)
	}
	for _, p := range out.Products {
		if p.CategoryID != catID {
			t.Errorf("product %d leaked from category %d", p.ID, p.CategoryID)
		}
	}

	t.Run("Count Caps Results", func(t *testing.T) {
		count := 2
		out, err := uc.ListProducts(ctx, catalog.ListProductsInput{
			Filter: model.ProductFilter{Count: &count},
		})
		if err != nil {
			t.Fatalf("list capped: %v", err)
		}
		if out.Total != 2 {
			t.Errorf("expected 2 products with count=2, got %d", out.Total)
		}
	})

	t.Run("Zero Count Is No Cap", func(t *testing.T) {
		count := 0
		out, err := uc.ListProducts(ctx, catalog.ListProductsInput{
			Filter: model.ProductFilter{Count: &count},
		})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if out.Total != 5 {
			t.Errorf("expected all 5 products with count=0, got %d", out.Total)
		}
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	uc, catID := newUC(t)

	created, err := uc.CreateProduct(ctx, catalog.CreateProductInput{Name: "Mat", CategoryID: catID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	removed, err := uc.DeleteProduct(ctx, created.Product.ID)
	if err != nil || !removed {
		t.Fatalf("delete: removed=%v err=%v", removed, err)
	}
	if _, err := uc.DetailProduct(ctx, created.Product.ID); !errors.Is(err, catalog.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound after delete, got %v", err)
	}

	removed, err = uc.DeleteProduct(ctx, created.Product.ID)
	if err != nil {
		t.Fatalf("second delete errored: %v", err)
	}
	if removed {
		t.Error("second delete should report false, not an error")
	}
}

func TestSearchProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Wrong Filter Variant", func(t *testing.T) {
		uc, _ := newUC(t)
		var f storage.Filter = model.MealFilter{}
		_, err := uc.SearchProducts(ctx, f)
		if !apperror.IsKind(err, apperror.KindTypeMismatch) {
			t.Errorf("expected KindTypeMismatch, got %v", err)
		}
	})

	t.Run("Matching Variant", func(t *testing.T) {
		uc, catID := newUC(t)
		if _, err := uc.CreateProduct(ctx, catalog.CreateProductInput{Name: "Foam Roller", CategoryID: catID}); err != nil {
			t.Fatalf("seed: %v", err)
		}
		term := "roller"
		out, err := uc.SearchProducts(ctx, model.ProductFilter{SearchTerm: &term})
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if out.Total != 1 {
			t.Errorf("expected 1 match, got %d", out.Total)
		}
	})
}
