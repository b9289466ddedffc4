package http

import (
	"github.com/gin-gonic/gin"

	"workout-core/pkg/response"
)

// AddCartItem godoc
// @Summary     Add an item to the cart
// @Description Adds a product to a customer's cart. The referenced product must exist.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       body body addCartItemReq true "Cart item"
// @Success     200 {object} cartItemResp
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/cart-items [POST]
func (h *handler) AddCartItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddCartItemReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.AddCartItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddCartItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCartItemResp(output.Item))
}

// ListCartItems godoc
// @Summary     List cart items
// @Description Lists cart items, optionally narrowed by customer or product.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       customer_id query int false "Customer ID"
// @Param       product_id  query int false "Product ID"
// @Success     200 {object} listCartItemsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/cart-items [GET]
func (h *handler) ListCartItems(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListCartItemsReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.ListCartItems(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCartItems: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListCartItemsResp(output))
}

// DetailCartItem godoc
// @Summary     Get one cart item
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       id path int true "Cart item ID"
// @Success     200 {object} cartItemResp
// @Failure     404 {object} response.Resp "Not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/cart-items/{id} [GET]
func (h *handler) DetailCartItem(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.DetailCartItem(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailCartItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCartItemResp(output.Item))
}

// UpdateCartItem godoc
// @Summary     Replace a cart item
// @Description Fully replaces the stored cart item. Fails with 404 when the id is absent.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       id   path int               true "Cart item ID"
// @Param       body body updateCartItemReq true "Replacement cart item"
// @Success     200 {object} cartItemResp
// @Failure     404 {object} response.Resp "Not found"
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/cart-items/{id} [PUT]
func (h *handler) UpdateCartItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateCartItemReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.UpdateCartItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateCartItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCartItemResp(output.Item))
}

// RemoveCartItem godoc
// @Summary     Remove a cart item
// @Description Removes a cart item. Removing an absent id reports removed=false, not an error.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       id path int true "Cart item ID"
// @Success     200 {object} removeResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/cart-items/{id} [DELETE]
func (h *handler) RemoveCartItem(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	removed, err := h.uc.RemoveCartItem(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveCartItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, removeResp{Removed: removed})
}

// AddWishlistItem godoc
// @Summary     Add an item to the wishlist
// @Description Saves a product for later. The referenced product must exist.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       body body addWishlistItemReq true "Wishlist item"
// @Success     200 {object} wishlistItemResp
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wishlist-items [POST]
func (h *handler) AddWishlistItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddWishlistItemReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.AddWishlistItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddWishlistItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newWishlistItemResp(output.Item))
}

// ListWishlistItems godoc
// @Summary     List wishlist items
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Success     200 {object} listWishlistItemsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wishlist-items [GET]
func (h *handler) ListWishlistItems(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListWishlistItems(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListWishlistItems: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListWishlistItemsResp(output))
}

// RemoveWishlistItem godoc
// @Summary     Remove a wishlist item
// @Description Removes a wishlist item. Removing an absent id reports removed=false, not an error.
// @Tags        Cart
// @Accept      json
// @Produce     json
// @Param       id path int true "Wishlist item ID"
// @Success     200 {object} removeResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/wishlist-items/{id} [DELETE]
func (h *handler) RemoveWishlistItem(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	removed, err := h.uc.RemoveWishlistItem(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.RemoveWishlistItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, removeResp{Removed: removed})
}
