package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"breeze/internal/model"
	"breeze/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestLog())
	srv.gin.Use(srv.mw.Cors())

	if srv.environment == model.EnvironmentProduction {
		srv.l.Info(context.Background(), "Secure session cookies enabled")
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.NoRoute(response.NotFound)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1. Every API
// route shares one per-IP rate limit; system routes are not limited.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1", srv.mw.RateLimit())

	srv.setupTaskDomain(ctx, api)
	srv.setupProjectDomain(ctx, api)
	srv.setupNoteDomain(ctx, api)
	srv.setupAssistantDomain(ctx, api)

	return nil
}
