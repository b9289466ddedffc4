package http

import (
	"workout-core/internal/cart"
	"workout-core/internal/model"
	"workout-core/pkg/response"
)

// --- Request DTOs ---

type addCartItemReq struct {
	CustomerID int `json:"customer_id" binding:"required"`
	ProductID  int `json:"product_id" binding:"required"`
	Quantity   int `json:"quantity" binding:"required,gt=0"`
}

func (r addCartItemReq) toInput() cart.AddCartItemInput {
	return cart.AddCartItemInput{
		CustomerID: r.CustomerID,
		ProductID:  r.ProductID,
		Quantity:   r.Quantity,
	}
}

type updateCartItemReq struct {
	ID         int `json:"-"` // populated from URI param
	CustomerID int `json:"customer_id" binding:"required"`
	ProductID  int `json:"product_id" binding:"required"`
	Quantity   int `json:"quantity" binding:"required,gt=0"`
}

func (r updateCartItemReq) toInput() cart.UpdateCartItemInput {
	return cart.UpdateCartItemInput{
		ID:         r.ID,
		CustomerID: r.CustomerID,
		ProductID:  r.ProductID,
		Quantity:   r.Quantity,
	}
}

type listCartItemsReq struct {
	ProductID  *int `form:"product_id"`
	CustomerID *int `form:"customer_id"`
}

func (r listCartItemsReq) toInput() cart.ListCartItemsInput {
	return cart.ListCartItemsInput{
		Filter: model.CartItemFilter{
			ProductID:  r.ProductID,
			CustomerID: r.CustomerID,
		},
	}
}

type addWishlistItemReq struct {
	CustomerID int `json:"customer_id" binding:"required"`
	ProductID  int `json:"product_id" binding:"required"`
}

func (r addWishlistItemReq) toInput() cart.AddWishlistItemInput {
	return cart.AddWishlistItemInput{
		CustomerID: r.CustomerID,
		ProductID:  r.ProductID,
	}
}

// --- Response DTOs ---

type cartItemResp struct {
	ID         int               `json:"id"`
	CustomerID int               `json:"customer_id"`
	ProductID  int               `json:"product_id"`
	Quantity   int               `json:"quantity"`
	AddedAt    response.DateTime `json:"added_at"`
}

func newCartItemResp(i model.CartItem) cartItemResp {
	return cartItemResp{
		ID:         i.ID,
		CustomerID: i.CustomerID,
		ProductID:  i.ProductID,
		Quantity:   i.Quantity,
		AddedAt:    response.DateTime(i.AddedAt),
	}
}

type listCartItemsResp struct {
	Items []cartItemResp `json:"items"`
	Total int            `json:"total"`
}

func (h *handler) newListCartItemsResp(out cart.ListCartItemsOutput) listCartItemsResp {
	items := make([]cartItemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newCartItemResp(item)
	}
	return listCartItemsResp{Items: items, Total: out.Total}
}

type wishlistItemResp struct {
	ID         int               `json:"id"`
	CustomerID int               `json:"customer_id"`
	ProductID  int               `json:"product_id"`
	AddedAt    response.DateTime `json:"added_at"`
}

func newWishlistItemResp(i model.WishlistItem) wishlistItemResp {
	return wishlistItemResp{
		ID:         i.ID,
		CustomerID: i.CustomerID,
		ProductID:  i.ProductID,
		AddedAt:    response.DateTime(i.AddedAt),
	}
}

type listWishlistItemsResp struct {
	Items []wishlistItemResp `json:"items"`
	Total int                `json:"total"`
}

func (h *handler) newListWishlistItemsResp(out cart.ListWishlistItemsOutput) listWishlistItemsResp {
	items := make([]wishlistItemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newWishlistItemResp(item)
	}
	return listWishlistItemsResp{Items: items, Total: out.Total}
}

type removeResp struct {
	Removed bool `json:"removed"`
}
