package http

import (
	"breeze/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the assistant endpoints. Session supplies the caller scope.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai", mw.Session())
	{
		ai.POST("", h.Submit)
		ai.GET("/history", h.History)
		ai.DELETE("/session", h.Reset)
	}
}
