package usecase

import (
	"context"

	"workout-core/internal/catalog"
	"workout-core/internal/model"
	"workout-core/internal/storage"
)

// CreateProduct persists a new product after resolving its category
// reference. A missing category fails the whole write.
func (uc *implUseCase) CreateProduct(ctx context.Context, input catalog.CreateProductInput) (catalog.ProductOutput, error) {
	if _, found, err := uc.categories.GetByID(ctx, input.CategoryID); err != nil {
		uc.l.Errorf(ctx, "uc.CreateProduct GetByID category: %v", err)
		return catalog.ProductOutput{}, err
	} else if !found {
		return catalog.ProductOutput{}, catalog.ErrUnknownCategory
	}

	product, err := uc.products.Create(ctx, model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		Color:       input.Color,
		Size:        input.Size,
		Stock:       input.Stock,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateProduct Create: %v", err)
		return catalog.ProductOutput{}, err
	}
	return catalog.ProductOutput{Product: product}, nil
}

// ListProducts returns products matching the filter; an empty filter
// lists everything.
func (uc *implUseCase) ListProducts(ctx context.Context, input catalog.ListProductsInput) (catalog.ListProductsOutput, error) {
	products, err := uc.products.GetAllFiltered(ctx, input.Filter)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListProducts GetAllFiltered: %v", err)
		return catalog.ListProductsOutput{}, err
	}
	return catalog.ListProductsOutput{Products: products, Total: len(products)}, nil
}

// DetailProduct returns a single product. ErrProductNotFound when missing.
func (uc *implUseCase) DetailProduct(ctx context.Context, id int) (catalog.ProductOutput, error) {
	product, found, err := uc.products.GetByID(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailProduct GetByID: %v", err)
		return catalog.ProductOutput{}, err
	}
	if !found {
		return catalog.ProductOutput{}, catalog.ErrProductNotFound
	}
	return catalog.ProductOutput{Product: product}, nil
}

// UpdateProduct fully replaces an existing product, re-validating the
// category reference.
func (uc *implUseCase) UpdateProduct(ctx context.Context, input catalog.UpdateProductInput) (catalog.ProductOutput, error) {
	if _, found, err := uc.categories.GetByID(ctx, input.CategoryID); err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProduct GetByID category: %v", err)
		return catalog.ProductOutput{}, err
	} else if !found {
		return catalog.ProductOutput{}, catalog.ErrUnknownCategory
	}

	product, err := uc.products.Update(ctx, model.Product{
		ID:          input.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		Color:       input.Color,
		Size:        input.Size,
		Stock:       input.Stock,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProduct Update: %v", err)
		return catalog.ProductOutput{}, err
	}
	return catalog.ProductOutput{Product: product}, nil
}

// DeleteProduct removes a product; deleting an absent id reports false.
func (uc *implUseCase) DeleteProduct(ctx context.Context, id int) (bool, error) {
	removed, err := uc.products.Delete(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteProduct Delete: %v", err)
		return false, err
	}
	return removed, nil
}

// SearchProducts narrows a late-bound filter to the product variant and
// delegates to the store.
func (uc *implUseCase) SearchProducts(ctx context.Context, filter storage.Filter) (catalog.ListProductsOutput, error) {
	typed, err := storage.As[model.ProductFilter](filter)
	if err != nil {
		return catalog.ListProductsOutput{}, err
	}
	return uc.ListProducts(ctx, catalog.ListProductsInput{Filter: typed})
}
