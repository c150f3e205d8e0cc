package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"breeze/config"
	"breeze/config/postgre"
	configRedis "breeze/config/redis"
	_ "breeze/docs" // Swagger docs
	"breeze/internal/assistant"
	assistantRepo "breeze/internal/assistant/repository"
	"breeze/internal/assistant/repository/memory"
	assistantRedis "breeze/internal/assistant/repository/redis"
	assistantUC "breeze/internal/assistant/usecase"
	"breeze/internal/httpserver"
	"breeze/internal/middleware"
	notePostgre "breeze/internal/note/repository/postgre"
	noteUC "breeze/internal/note/usecase"
	projectPostgre "breeze/internal/project/repository/postgre"
	projectUC "breeze/internal/project/usecase"
	taskPostgre "breeze/internal/task/repository/postgre"
	taskUC "breeze/internal/task/usecase"
	"breeze/pkg/datemath"
	"breeze/pkg/llmprovider"
	"breeze/pkg/log"
	"breeze/pkg/ratelimit"
)

// @title       Breeze API
// @description Task management with a natural-language assistant backed by several AI providers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Breeze API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	if err := taskPostgre.EnsureSchema(ctx, postgresDB); err != nil {
		logger.Error(ctx, "Failed to ensure task schema: ", err)
		return
	}
	if err := projectPostgre.EnsureSchema(ctx, postgresDB); err != nil {
		logger.Error(ctx, "Failed to ensure project schema: ", err)
		return
	}
	if err := notePostgre.EnsureSchema(ctx, postgresDB); err != nil {
		logger.Error(ctx, "Failed to ensure note schema: ", err)
		return
	}

	readyChecks := []httpserver.ReadyCheck{{Name: "postgres", Ping: postgresDB.PingContext}}

	var conversations assistantRepo.Repository
	sessionTTL := config.ParseDuration(cfg.Session.TTL, 24*time.Hour)
	if cfg.Session.Store == "redis" {
		redisClient, err := configRedis.Connect(ctx, cfg.Session)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer configRedis.Disconnect(redisClient)
		conversations = assistantRedis.New(redisClient, sessionTTL, logger)
		readyChecks = append(readyChecks, httpserver.ReadyCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
		logger.Info(ctx, "Conversation store: redis")
	} else {
		conversations = memory.New(cfg.Session.MaxSessions, sessionTTL)
		logger.Info(ctx, "Conversation store: memory")
	}

	// 4. Dates
	dates, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 5. Domains
	taskRepo := taskPostgre.New(postgresDB, logger)
	calendar := taskUC.NewCalendarMirror(ctx, logger, taskUC.CalendarConfig{
		Enabled:         cfg.GoogleCalendar.Enabled,
		CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		Timezone:        cfg.GoogleCalendar.Timezone,
	})
	tasks := taskUC.New(taskRepo, logger, calendar)
	projects := projectUC.New(projectPostgre.New(postgresDB, logger), tasks, logger)
	notes := noteUC.New(notePostgre.New(postgresDB, logger), logger)

	// 6. Provider chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize AI providers: ", err)
		return
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid provider chain config: ", err)
		return
	}
	chain := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "Provider chain: %v", chain.Providers())

	// 7. Assistant domain
	assistantUseCase := assistantUC.New(logger, chain, assistant.NewResolver(dates), conversations, tasks)

	// 8. HTTP Server
	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.New(cfg.RateLimit.Requests, config.ParseDuration(cfg.RateLimit.Window, ratelimit.DefaultWindow), 0)
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ReadyChecks: readyChecks,
		Middleware: middleware.Config{
			CookieName: cfg.Session.CookieName,
			CookieTTL:  config.ParseDuration(cfg.Session.CookieTTL, middleware.DefaultCookieTTL),
			Secure:     cfg.IsProduction(),
			Limiter:    limiter,
		},
		TaskUC:      tasks,
		ProjectUC:   projects,
		NoteUC:      notes,
		AssistantUC: assistantUseCase,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
