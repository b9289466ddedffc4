package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	m := rg.Group("/meals")
	{
		m.POST("", h.CreateMeal)
		m.GET("", h.ListMeals)
		m.POST("/search", h.SearchMeals)
		m.GET("/:id", h.DetailMeal)
		m.PUT("/:id", h.UpdateMeal)
		m.DELETE("/:id", h.DeleteMeal)
	}

	i := rg.Group("/ingredients")
	{
		i.POST("", h.CreateIngredient)
		i.GET("", h.ListIngredients)
		i.GET("/:id", h.DetailIngredient)
		i.PUT("/:id", h.UpdateIngredient)
		i.DELETE("/:id", h.DeleteIngredient)
	}
}
