package inmemory_test

import (
	"context"
	"sort"
	"testing"

	"workout-core/internal/model"
	"workout-core/internal/storage/inmemory"
	"workout-core/pkg/apperror"
)

func newProductStore() *inmemory.Store[model.Product, model.ProductFilter] {
	return inmemory.New[model.Product, model.ProductFilter](
		func(p model.Product, id int) model.Product { p.ID = id; return p },
		func(p model.Product, f model.ProductFilter) bool {
			if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
				return false
			}
			if f.ExcludeProductID != nil && p.ID == *f.ExcludeProductID {
				return false
			}
			return true
		},
	)
}

func TestCRUDRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newProductStore()

	created, err := store.Create(ctx, model.Product{Name: "Kettlebell", CategoryID: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, found, err := store.GetByID(ctx, created.ID)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if got.Name != "Kettlebell" || got.CategoryID != 5 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	removed, err := store.Delete(ctx, created.ID)
	if err != nil || !removed {
		t.Fatalf("delete: removed=%v err=%v", removed, err)
	}
	if _, found, _ := store.GetByID(ctx, created.ID); found {
		t.Error("entity still present after delete")
	}
}

func TestDeleteAbsentIsNotAnError(t *testing.T) {
	removed, err := newProductStore().Delete(context.Background(), 999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Error("expected false for absent id")
	}
}

func TestUpdateAbsentIsNotFound(t *testing.T) {
	_, err := newProductStore().Update(context.Background(), model.Product{ID: 42})
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Errorf("expected KindNotFound, got %v", err)
	}
}

func TestEmptyFilterEqualsGetAll(t *testing.T) {
	ctx := context.Background()
	store := newProductStore()
	for _, cat := range []int{5, 5, 5, 7, 7} {
		if _, err := store.Create(ctx, model.Product{Name: "p", CategoryID: cat}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	all, _ := store.GetAll(ctx)
	filtered, err := store.GetAllFiltered(ctx, model.ProductFilter{})
	if err != nil {
		t.Fatalf("filtered: %v", err)
	}
	if !sameIDs(all, filtered) {
		t.Errorf("empty filter must equal GetAll: all=%d filtered=%d", len(all), len(filtered))
	}
}

func TestFilterByCategory(t *testing.T) {
	ctx := context.Background()
	store := newProductStore()
	for _, cat := range []int{5, 7, 5, 7, 5} {
		if _, err := store.Create(ctx, model.Product{Name: "p", CategoryID: cat}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	cat := 5
	got, err := store.GetAllFiltered(ctx, model.ProductFilter{CategoryID: &cat})
	if err != nil {
		t.Fatalf("filtered: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 category-5 products, got %d", len(got))
	}
	for _, p := range got {
		if p.CategoryID != 5 {
			t.Errorf("product %d has category %d", p.ID, p.CategoryID)
		}
	}
}

func TestOptOutStoreReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	// Wishlist items opt out of filtering: no matcher configured.
	store := inmemory.New[model.WishlistItem, model.CartItemFilter](
		func(w model.WishlistItem, id int) model.WishlistItem { w.ID = id; return w },
		nil,
	)
	if _, err := store.Create(ctx, model.WishlistItem{CustomerID: 1, ProductID: 2}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := store.GetAllFiltered(ctx, model.CartItemFilter{})
	if err != nil {
		t.Fatalf("filtered: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("opt-out store must return empty, got %d items", len(got))
	}
}

func sameIDs(a, b []model.Product) bool {
	if len(a) != len(b) {
		return false
	}
	ids := func(ps []model.Product) []int {
		out := make([]int, len(ps))
		for i, p := range ps {
			out[i] = p.ID
		}
		sort.Ints(out)
		return out
	}
	ia, ib := ids(a), ids(b)
	for i := range ia {
		if ia[i] != ib[i] {
			return false
		}
	}
	return true
}
