package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"breeze/internal/assistant"
	"breeze/internal/middleware"
	"breeze/internal/note"
	"breeze/internal/project"
	"breeze/internal/task"
	"breeze/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	readyChecks []ReadyCheck
	mw          middleware.Middleware

	// Domains
	taskUC      task.UseCase
	projectUC   project.UseCase
	noteUC      note.UseCase
	assistantUC assistant.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ReadyChecks []ReadyCheck
	Middleware  middleware.Config

	TaskUC      task.UseCase
	ProjectUC   project.UseCase
	NoteUC      note.UseCase
	AssistantUC assistant.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		readyChecks: cfg.ReadyChecks,
		mw:          middleware.New(logger, cfg.Middleware),
		taskUC:      cfg.TaskUC,
		projectUC:   cfg.ProjectUC,
		noteUC:      cfg.NoteUC,
		assistantUC: cfg.AssistantUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.projectUC == nil {
		return errors.New("project usecase is required")
	}
	if srv.noteUC == nil {
		return errors.New("note usecase is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant usecase is required")
	}
	for _, chk := range srv.readyChecks {
		if chk.Name == "" || chk.Ping == nil {
			return errors.New("ready check needs a name and a ping")
		}
	}
	return nil
}
