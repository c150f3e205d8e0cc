package http

import (
	"github.com/gin-gonic/gin"

	"breeze/internal/middleware"
)

// RegisterRoutes maps /projects onto the handler behind the Session middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	projects := rg.Group("/projects", mw.Session())
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Detail)
		projects.DELETE("/:id", h.Delete)
	}
}
