package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	r := rg.Group("/rankings")
	{
		r.GET("/bands", h.ListBands)
		r.GET("/:user_id/:category", h.GetRank)
		r.POST("/:user_id/:category/points", h.AwardPoints)
	}
}
