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

func (h *handler) processCreateProductReq(c *gin.Context) (createProductReq, error) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateProductReq(c *gin.Context) (updateProductReq, error) {
	var req updateProductReq
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

func (h *handler) processListProductsReq(c *gin.Context) (listProductsReq, error) {
	var req listProductsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateCategoryReq(c *gin.Context) (createCategoryReq, error) {
	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateCategoryReq(c *gin.Context) (updateCategoryReq, error) {
	var req updateCategoryReq
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
