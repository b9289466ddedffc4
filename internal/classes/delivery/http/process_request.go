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

func (h *handler) processCreateSessionReq(c *gin.Context) (createSessionReq, error) {
	var req createSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processUpdateSessionReq(c *gin.Context) (updateSessionReq, error) {
	var req updateSessionReq
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

func (h *handler) processBookSessionReq(c *gin.Context) (bookSessionReq, error) {
	var req bookSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	req.SessionID = id
	return req, nil
}

func (h *handler) processUserIDParam(c *gin.Context) (int, error) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return 0, fmt.Errorf("user_id must be an integer")
	}
	return userID, nil
}
