package catalog

import (
	"context"

	"workout-core/internal/storage"
)

// UseCase is the catalog (products + categories) surface.
type UseCase interface {
	// Products
	CreateProduct(ctx context.Context, input CreateProductInput) (ProductOutput, error)
	ListProducts(ctx context.Context, input ListProductsInput) (ListProductsOutput, error)
	DetailProduct(ctx context.Context, id int) (ProductOutput, error)
	UpdateProduct(ctx context.Context, input UpdateProductInput) (ProductOutput, error)
	DeleteProduct(ctx context.Context, id int) (bool, error)

	// SearchProducts accepts a late-bound filter from the JSON search
	// boundary; a non-product variant fails with a TypeMismatch error.
	SearchProducts(ctx context.Context, filter storage.Filter) (ListProductsOutput, error)

	// Categories
	CreateCategory(ctx context.Context, input CreateCategoryInput) (CategoryOutput, error)
	ListCategories(ctx context.Context, input ListCategoriesInput) (ListCategoriesOutput, error)
	DetailCategory(ctx context.Context, id int) (CategoryOutput, error)
	UpdateCategory(ctx context.Context, input UpdateCategoryInput) (CategoryOutput, error)
	DeleteCategory(ctx context.Context, id int) (bool, error)
}
