package http

import (
	"github.com/gin-gonic/gin"

	"catalog-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Auth applies to the whole group; it is a no-op when auth is disabled.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	items.Use(mw.Auth())
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
