package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workout-core/internal/model"
)

// CORS opens the API in non-production environments and stays restrictive
// in production, where a fronting proxy is expected to set the policy.
func (m Middleware) CORS() gin.HandlerFunc {
	permissive := m.cfg.Environment.Name != string(model.EnvironmentProduction)
	return func(c *gin.Context) {
		if permissive {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
