package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	p := rg.Group("/products")
	{
		p.POST("", h.CreateProduct)
		p.GET("", h.ListProducts)
		p.POST("/search", h.SearchProducts)
		p.GET("/:id", h.DetailProduct)
		p.PUT("/:id", h.UpdateProduct)
		p.DELETE("/:id", h.DeleteProduct)
	}

	c := rg.Group("/categories")
	{
		c.POST("", h.CreateCategory)
		c.GET("", h.ListCategories)
		c.GET("/:id", h.DetailCategory)
		c.PUT("/:id", h.UpdateCategory)
		c.DELETE("/:id", h.DeleteCategory)
	}
}
