package catalog

import "workout-core/internal/model"

// --- UseCase Inputs ---

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  int
	Color       string
	Size        string
	Stock       int
}

// UpdateProductInput fully replaces the stored product (no partial patch).
type UpdateProductInput struct {
	ID          int
	Name        string
	Description string
	Price       float64
	CategoryID  int
	Color       string
	Size        string
	Stock       int
}

type ListProductsInput struct {
	Filter model.ProductFilter
}

type CreateCategoryInput struct {
	Name string
}

type UpdateCategoryInput struct {
	ID   int
	Name string
}

type ListCategoriesInput struct {
	Filter model.CategoryFilter
}

// --- UseCase Outputs ---

type ProductOutput struct {
	Product model.Product
}

type ListProductsOutput struct {
	Products []model.Product
	Total    int
}

type CategoryOutput struct {
	Category model.Category
}

type ListCategoriesOutput struct {
	Categories []model.Category
	Total      int
}
