package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// processGetRankReq binds and validates the rank lookup URI params.
func (h *handler) processGetRankReq(c *gin.Context) (getRankReq, error) {
	var req getRankReq

	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return req, fmt.Errorf("user_id must be an integer")
	}
	req.UserID = userID
	req.CategoryKey = c.Param("category")
	if req.CategoryKey == "" {
		return req, fmt.Errorf("category is required")
	}
	return req, nil
}

// processAwardPointsReq binds the award body + URI params.
func (h *handler) processAwardPointsReq(c *gin.Context) (awardPointsReq, error) {
	var req awardPointsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return req, fmt.Errorf("user_id must be an integer")
	}
	req.UserID = userID
	req.CategoryKey = c.Param("category")
	if req.CategoryKey == "" {
		return req, fmt.Errorf("category is required")
	}
	return req, nil
}
