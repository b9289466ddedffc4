package http

import (
	"github.com/gin-gonic/gin"

	"workout-core/pkg/response"
)

// GetRank godoc
// @Summary     Get a user's rank in one category
// @Description Resolves the user's point total to its band and the points missing to the next band.
// @Tags        Rankings
// @Accept      json
// @Produce     json
// @Param       user_id  path string true "User ID"
// @Param       category path string true "Category key (e.g. chest, legs)"
// @Success     200 {object} rankResp
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rankings/{user_id}/{category} [GET]
func (h *handler) GetRank(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetRankReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.GetRank(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GetRank: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRankResp(output))
}

// AwardPoints godoc
// @Summary     Award points to a user
// @Description Accumulates points in one category and returns the new total with its band.
// @Tags        Rankings
// @Accept      json
// @Produce     json
// @Param       user_id  path string         true "User ID"
// @Param       category path string         true "Category key"
// @Param       body     body awardPointsReq true "Points to award"
// @Success     200 {object} awardResp
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rankings/{user_id}/{category}/points [POST]
func (h *handler) AwardPoints(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAwardPointsReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.AwardPoints(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AwardPoints: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAwardResp(output))
}

// ListBands godoc
// @Summary     List rank bands
// @Description Returns the active band table, lowest band first.
// @Tags        Rankings
// @Accept      json
// @Produce     json
// @Success     200 {object} bandsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rankings/bands [GET]
func (h *handler) ListBands(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListBands(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListBands: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBandsResp(output))
}
