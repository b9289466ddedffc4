package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	s := rg.Group("/class-sessions")
	{
		s.POST("", h.CreateSession)
		s.GET("", h.ListSessions)
		s.GET("/:id", h.DetailSession)
		s.PUT("/:id", h.UpdateSession)
		s.DELETE("/:id", h.DeleteSession)
		s.POST("/:id/bookings", h.BookSession)
	}

	b := rg.Group("/bookings")
	{
		b.GET("/user/:user_id", h.ListUserBookings)
		b.DELETE("/:id", h.CancelBooking)
	}
}
