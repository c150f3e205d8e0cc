package http

import (
	"github.com/gin-gonic/gin"

	"breeze/internal/middleware"
)

// RegisterRoutes maps /notes onto the handler behind the Session middleware.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	notes := rg.Group("/notes", mw.Session())
	{
		notes.POST("", h.Create)
		notes.GET("", h.List)
		notes.PUT("/:id", h.Update)
		notes.DELETE("/:id", h.Delete)
	}
}
