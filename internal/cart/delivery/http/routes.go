package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	ci := rg.Group("/cart-items")
	{
		ci.POST("", h.AddCartItem)
		ci.GET("", h.ListCartItems)
		ci.GET("/:id", h.DetailCartItem)
		ci.PUT("/:id", h.UpdateCartItem)
		ci.DELETE("/:id", h.RemoveCartItem)
	}

	w := rg.Group("/wishlist-items")
	{
		w.POST("", h.AddWishlistItem)
		w.GET("", h.ListWishlistItems)
		w.DELETE("/:id", h.RemoveWishlistItem)
	}
}
