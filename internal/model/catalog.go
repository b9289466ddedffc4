package model

import "time"

// Product is a shop item.
type Product struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	CategoryID  int       `db:"category_id"`
	Color       string    `db:"color"`
	Size        string    `db:"size"`
	Stock       int       `db:"stock"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// EntityID implements storage.Entity.
func (p Product) EntityID() int { return p.ID }

// Category groups products.
type Category struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}

// EntityID implements storage.Entity.
func (c Category) EntityID() int { return c.ID }
