package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"breeze/config"
	configNATS "breeze/config/nats"
	"breeze/config/postgre"
	configRedis "breeze/config/redis"
	"breeze/internal/assistant"
	assistantNATS "breeze/internal/assistant/delivery/nats"
	assistantRepo "breeze/internal/assistant/repository"
	"breeze/internal/assistant/repository/memory"
	assistantRedis "breeze/internal/assistant/repository/redis"
	assistantUC "breeze/internal/assistant/usecase"
	taskPostgre "breeze/internal/task/repository/postgre"
	taskUC "breeze/internal/task/usecase"
	"breeze/pkg/datemath"
	"breeze/pkg/llmprovider"
	"breeze/pkg/log"
)

// main is the entry point for the NATS prompt consumer.
// It answers request-reply messages on the prompt subject with the same
// assistant pipeline the HTTP API uses.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create UseCases
//  3. Subscribe the NATS consumer
//  4. Run & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting consumer service...")

	// Infrastructure
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

	// Conversations must be shared with the API for a session to span both
	// transports, so the consumer expects the redis store.
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
	} else {
		logger.Warn(ctx, "Conversation store is memory; sessions are not shared with the API")
		conversations = memory.New(cfg.Session.MaxSessions, sessionTTL)
	}

	natsConn, err := configNATS.Connect(cfg.NATS, "breeze-consumer")
	if err != nil {
		logger.Error(ctx, "Failed to connect to NATS: ", err)
		return
	}
	defer configNATS.Disconnect(natsConn)

	// UseCases
	dates, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	calendar := taskUC.NewCalendarMirror(ctx, logger, taskUC.CalendarConfig{
		Enabled:         cfg.GoogleCalendar.Enabled,
		CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		Timezone:        cfg.GoogleCalendar.Timezone,
	})
	tasks := taskUC.New(taskPostgre.New(postgresDB, logger), logger, calendar)

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

	assistantUseCase := assistantUC.New(logger, chain, assistant.NewResolver(dates), conversations, tasks)

	// Consumer
	consumer := assistantNATS.New(logger, assistantUseCase, natsConn, assistantNATS.Config{
		Subject: cfg.NATS.Subject,
		Queue:   cfg.NATS.Queue,
		Timeout: config.ParseDuration(cfg.NATS.Timeout, assistantNATS.DefaultTimeout),
	})
	if err := consumer.Start(ctx); err != nil {
		logger.Error(ctx, "Failed to start NATS consumer: ", err)
		return
	}

	<-ctx.Done()
	logger.Info(ctx, "Shutting down consumer...")
	if err := consumer.Drain(); err != nil {
		logger.Warnf(ctx, "NATS drain: %v", err)
	}
	logger.Info(ctx, "Consumer stopped gracefully")
}
