package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handler) processIDParam(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, fmt.Errorf("id must be an integer")
	}
	return id, nil
}

func (h *handler) processAddCartItemReq(c *gin.Context) (addCartItemReq, error) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateCartItemReq(c *gin.Context) (updateCartItemReq, error) {
	var req updateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

func (h *handler) processListCartItemsReq(c *gin.Context) (listCartItemsReq, error) {
	var req listCartItemsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processAddWishlistItemReq(c *gin.Context) (addWishlistItemReq, error) {
	var req addWishlistItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
