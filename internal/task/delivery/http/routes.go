package http

import (
	"breeze/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route runs behind the Session middleware, which supplies the caller scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Session())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.DELETE("", h.DeleteByProject)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}
