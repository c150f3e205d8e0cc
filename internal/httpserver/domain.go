package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "breeze/internal/assistant/delivery/http"
	noteHTTP "breeze/internal/note/delivery/http"
	projectHTTP "breeze/internal/project/delivery/http"
	taskHTTP "breeze/internal/task/delivery/http"
)

// setupTaskDomain registers /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Task domain registered")
}

// setupProjectDomain registers /api/v1/projects.
func (srv HTTPServer) setupProjectDomain(ctx context.Context, api *gin.RouterGroup) {
	h := projectHTTP.New(srv.l, srv.projectUC)
	projectHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Project domain registered")
}

// setupNoteDomain registers /api/v1/notes.
func (srv HTTPServer) setupNoteDomain(ctx context.Context, api *gin.RouterGroup) {
	h := noteHTTP.New(srv.l, srv.noteUC)
	noteHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Note domain registered")
}

// setupAssistantDomain registers /api/v1/ai.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) {
	h := assistantHTTP.New(srv.l, srv.assistantUC)
	assistantHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Assistant domain registered")
}
