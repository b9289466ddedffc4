package usecase_test

import (
	"context"
	"errors"
	"testing"

	"workout-core/internal/cart"
	cartInmem "workout-core/internal/cart/repository/inmemory"
	"workout-core/internal/cart/usecase"
	catalogInmem "workout-core/internal/catalog/repository/inmemory"
	"workout-core/internal/model"
	"workout-core/pkg/log"
)

func newUC(t *testing.T) (cart.UseCase, int) {
	t.Helper()
	products := catalogInmem.NewProducts()
	seeded, err := products.Create(context.Background(), model.Product{Name: "Kettlebell", Price: 29.99})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	uc := usecase.New(cartInmem.NewCartItems(), cartInmem.NewWishlistItems(), products, log.NewNoop())
	return uc, seeded.ID
}

func TestAddCartItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		uc, productID := newUC(t)
		added, err := uc.AddCartItem(ctx, cart.AddCartItemInput{CustomerID: 7, ProductID: productID, Quantity: 2})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		detail, err := uc.DetailCartItem(ctx, added.Item.ID)
		if err != nil {
			t.Fatalf("detail: %v", err)
		}
		if detail.Item.Quantity != 2 || detail.Item.ProductID != productID {
			t.Errorf("round trip mismatch: %+v", detail.Item)
		}
	})

	t.Run("Unknown Product Reference", func(t *testing.T) {
		uc, _ := newUC(t)
		_, err := uc.AddCartItem(ctx, cart.AddCartItemInput{CustomerID: 7, ProductID: 999999, Quantity: 1})
		if !errors.Is(err, cart.ErrUnknownProduct) {
			t.Fatalf("expected ErrUnknownProduct, got %v", err)
		}
		out, err := uc.ListCartItems(ctx, cart.ListCartItemsInput{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if out.Total != 0 {
			t.Errorf("expected no items after failed add, got %d", out.Total)
		}
	})

	t.Run("Invalid Quantity", func(t *testing.T) {
		uc, productID := newUC(t)
		_, err := uc.AddCartItem(ctx, cart.AddCartItemInput{CustomerID: 7, ProductID: productID, Quantity: 0})
		if !errors.Is(err, cart.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestListCartItemsFiltered(t *testing.T) {
	ctx := context.Background()
	uc, productID := newUC(t)

	for _, customer := range []int{1, 1, 2} {
		if _, err := uc.AddCartItem(ctx, cart.AddCartItemInput{CustomerID: customer, ProductID: productID, Quantity: 1}); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	customer := 1
	out, err := uc.ListCartItems(ctx, cart.ListCartItemsInput{
		Filter: model.CartItemFilter{CustomerID: &customer},
	})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if out.Total != 2 {
		t.Fatalf("expected 2 items for customer 1, got %d", out.Total)
	}

	// Empty filter behaves like an unfiltered list.
	all, err := uc.ListCartItems(ctx, cart.ListCartItemsInput{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if all.Total != 3 {
		t.Errorf("expected 3 items with empty filter, got %d", all.Total)
	}
}

func TestUpdateCartItem(t *testing.T) {
	ctx := context.Background()
	uc, productID := newUC(t)

	added, err := uc.AddCartItem(ctx, cart.AddCartItemInput{CustomerID: 7, ProductID: productID, Quantity: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := uc.UpdateCartItem(ctx, cart.UpdateCartItemInput{
		ID: added.Item.ID, CustomerID: 7, ProductID: productID, Quantity: 5,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Item.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", updated.Item.Quantity)
	}

	_, err = uc.UpdateCartItem(ctx, cart.UpdateCartItemInput{
		ID: 999999, CustomerID: 7, ProductID: productID, Quantity: 1,
	})
	if err == nil {
		t.Error("expected error updating absent item")
	}
}

func TestRemoveCartItem(t *testing.T) {
	ctx := context.Background()
	uc, productID := newUC(t)

	added, err := uc.AddCartItem(ctx, cart.AddCartItemInput{CustomerID: 7, ProductID: productID, Quantity: 1})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	removed, err := uc.RemoveCartItem(ctx, added.Item.ID)
	if err != nil || !removed {
		t.Fatalf("remove: removed=%v err=%v", removed, err)
	}
	removed, err = uc.RemoveCartItem(ctx, added.Item.ID)
	if err != nil {
		t.Fatalf("second remove errored: %v", err)
	}
	if removed {
		t.Error("second remove should report false, not an error")
	}
}

func TestWishlist(t *testing.T) {
	ctx := context.Background()
	uc, productID := newUC(t)

	added, err := uc.AddWishlistItem(ctx, cart.AddWishlistItemInput{CustomerID: 7, ProductID: productID})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := uc.ListWishlistItems(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if out.Total != 1 {
		t.Fatalf("expected 1 wishlist item, got %d", out.Total)
	}

	removed, err := uc.RemoveWishlistItem(ctx, added.Item.ID)
	if err != nil || !removed {
		t.Fatalf("remove: removed=%v err=%v", removed, err)
	}
}

// Wishlist stores never override filtering, so even an empty filter
// yields nothing through the filtered path.
func TestWishlistFilteringOptOut(t *testing.T) {
	ctx := context.Background()
	store := cartInmem.NewWishlistItems()

	if _, err := store.Create(ctx, model.WishlistItem{CustomerID: 7, ProductID: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := store.GetAllFiltered(ctx, model.CartItemFilter{})
	if err != nil {
		t.Fatalf("filtered: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty result from non-overridden filter path, got %d items", len(items))
	}
}
