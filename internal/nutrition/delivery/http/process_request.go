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

func (h *handler) processCreateMealReq(c *gin.Context) (createMealReq, error) {
	var req createMealReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateMealReq(c *gin.Context) (updateMealReq, error) {
	var req updateMealReq
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

func (h *handler) processListMealsReq(c *gin.Context) (listMealsReq, error) {
	var req listMealsReq
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

func (h *handler) processCreateIngredientReq(c *gin.Context) (createIngredientReq, error) {
	var req createIngredientReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateIngredientReq(c *gin.Context) (updateIngredientReq, error) {
	var req updateIngredientReq
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
