package http

import (
	"encoding/json"

	"workout-core/internal/catalog"
	"workout-core/internal/model"
	"workout-core/pkg/response"
)

// --- Request DTOs ---

type createProductReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CategoryID  int     `json:"category_id" binding:"required"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Stock       int     `json:"stock"`
}

func (r createProductReq) toInput() catalog.CreateProductInput {
	return catalog.CreateProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		Color:       r.Color,
		Size:        r.Size,
		Stock:       r.Stock,
	}
}

type updateProductReq struct {
	ID          int     `json:"-"` // populated from URI param
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CategoryID  int     `json:"category_id" binding:"required"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Stock       int     `json:"stock"`
}

func (r updateProductReq) toInput() catalog.UpdateProductInput {
	return catalog.UpdateProductInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		Color:       r.Color,
		Size:        r.Size,
		Stock:       r.Stock,
	}
}

type listProductsReq struct {
	CategoryID *int    `form:"category_id"`
	Color      *string `form:"color"`
	Size       *string `form:"size"`
	Count      *int    `form:"count"`
}

func (r listProductsReq) toInput() catalog.ListProductsInput {
	return catalog.ListProductsInput{
		Filter: model.ProductFilter{
			CategoryID: r.CategoryID,
			Color:      r.Color,
			Size:       r.Size,
			Count:      r.Count,
		},
	}
}

// searchReq is the kind-tagged filter envelope accepted by the search
// endpoint. The filter payload is decoded late through model.DecodeFilter.
type searchReq struct {
	Kind   string          `json:"kind" binding:"required"`
	Filter json.RawMessage `json:"filter"`
}

type createCategoryReq struct {
	Name string `json:"name" binding:"required"`
}

func (r createCategoryReq) toInput() catalog.CreateCategoryInput {
	return catalog.CreateCategoryInput{Name: r.Name}
}

type updateCategoryReq struct {
	ID   int    `json:"-"` // populated from URI param
	Name string `json:"name" binding:"required"`
}

func (r updateCategoryReq) toInput() catalog.UpdateCategoryInput {
	return catalog.UpdateCategoryInput{ID: r.ID, Name: r.Name}
}

// --- Response DTOs ---

type productResp struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	CategoryID  int               `json:"category_id"`
	Color       string            `json:"color"`
	Size        string            `json:"size"`
	Stock       int               `json:"stock"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newProductResp(p model.Product) productResp {
	return productResp{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID,
		Color:       p.Color,
		Size:        p.Size,
		Stock:       p.Stock,
		CreatedAt:   response.DateTime(p.CreatedAt),
		UpdatedAt:   response.DateTime(p.UpdatedAt),
	}
}

type listProductsResp struct {
	Products []productResp `json:"products"`
	Total    int           `json:"total"`
}

func (h *handler) newListProductsResp(out catalog.ListProductsOutput) listProductsResp {
	products := make([]productResp, len(out.Products))
	for i, p := range out.Products {
		products[i] = newProductResp(p)
	}
	return listProductsResp{Products: products, Total: out.Total}
}

type categoryResp struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newCategoryResp(c model.Category) categoryResp {
	return categoryResp{ID: c.ID, Name: c.Name}
}

type listCategoriesResp struct {
	Categories []categoryResp `json:"categories"`
	Total      int            `json:"total"`
}

func (h *handler) newListCategoriesResp(out catalog.ListCategoriesOutput) listCategoriesResp {
	categories := make([]categoryResp, len(out.Categories))
	for i, c := range out.Categories {
		categories[i] = newCategoryResp(c)
	}
	return listCategoriesResp{Categories: categories, Total: out.Total}
}

type deleteResp struct {
	Removed bool `json:"removed"`
}
