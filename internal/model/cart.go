package model

import "time"

// CartItem is a product placed in a customer's cart.
type CartItem struct {
	ID         int       `db:"id"`
	CustomerID int       `db:"customer_id"`
	ProductID  int       `db:"product_id"`
	Quantity   int       `db:"quantity"`
	AddedAt    time.Time `db:"added_at"`
}

// EntityID implements storage.Entity.
func (i CartItem) EntityID() int { return i.ID }

// WishlistItem is a product saved for later by a customer.
type WishlistItem struct {
	ID         int       `db:"id"`
	CustomerID int       `db:"customer_id"`
	ProductID  int       `db:"product_id"`
	AddedAt    time.Time `db:"added_at"`
}

// EntityID implements storage.Entity.
func (i WishlistItem) EntityID() int { return i.ID }
