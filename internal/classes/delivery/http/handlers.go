package http

import (
	"github.com/gin-gonic/gin"

	"workout-core/pkg/response"
)

// CreateSession godoc
// @Summary     Create a class session
// @Tags        Classes
// @Accept      json
// @Produce     json
// @Param       body body createSessionReq true "Session"
// @Success     200 {object} sessionResp
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/class-sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateSessionReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.CreateSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output.Session))
}

// ListSessions godoc
// @Summary     List class sessions
// @Description Lists sessions ordered by start time.
// @Tags        Classes
// @Accept      json
// @Produce     json
// @Success     200 {object} listSessionsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/class-sessions [GET]
func (h *handler) ListSessions(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListSessions(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListSessions: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListSessionsResp(output))
}

// DetailSession godoc
// @Summary     Get one class session
// @Tags        Classes
// @Accept      json
// @Produce     json
// @Param       id path int true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/class-sessions/{id} [GET]
func (h *handler) DetailSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.DetailSession(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output.Session))
}

// UpdateSession godoc
// @Summary     Replace a class session
// @Description Fully replaces the stored session; the booked counter is preserved.
// @Tags        Classes
// @Accept      json
// @Produce     json
// @Param       id   path int              true "Session ID"
// @Param       body body updateSessionReq true "Replacement session"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Not found"
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/class-sessions/{id} [PUT]
func (h *handler) UpdateSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateSessionReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.UpdateSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(output.Session))
}

// DeleteSession godoc
// @Summary     Delete a class session
// @Description Removes a session. Deleting an absent id reports removed=false, not an error.
// @Tags        Classes
// @Accept      json
// @Produce     json
// @Param       id path int true "Session ID"
// @Success     200 {object} removeResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/class-sessions/{id} [DELETE]
func (h *handler) DeleteSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	removed, err := h.uc.DeleteSession(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, removeResp{Removed: removed})
}

// BookSession godoc
// @Summary     Book a spot in a class session
// @Description Reserves a seat atomically; a full class fails with a validation error. The booking is mirrored to the configured calendar when available.
// @Tags        Classes
// @Accept      json
// @Produce     json
// @Param       id   path int            true "Session ID"
// @Param       body body bookSessionReq true "Booking"
// @Success     200 {object} bookingResp
// @Failure     422 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/class-sessions/{id}/bookings [POST]
func (h *handler) BookSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBookSessionReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.BookSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.BookSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(output.Booking))
}

// ListUserBookings godoc
// @Summary     List a user's bookings
// @Tags        Classes
// @Accept      json
// @Produce     json
// @Param       user_id path int true "User ID"
// @Success     200 {object} listBookingsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/bookings/user/{user_id} [GET]
func (h *handler) ListUserBookings(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.processUserIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.ListUserBookings(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListUserBookings: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListBookingsResp(output))
}

// CancelBooking godoc
// @Summary     Cancel a booking
// @Description Frees the seat and removes the mirrored calendar event. Cancelling an absent id reports removed=false, not an error.
// @Tags        Classes
// @Accept      json
// @Produce     json
// @Param       id path int true "Booking ID"
// @Success     200 {object} removeResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/bookings/{id} [DELETE]
func (h *handler) CancelBooking(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	removed, err := h.uc.CancelBooking(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.CancelBooking: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, removeResp{Removed: removed})
}
