package nats

import (
	"time"

	"github.com/nats-io/nats.go"

	"breeze/internal/assistant"
	"breeze/pkg/log"
)

const (
	DefaultSubject = "assistant.prompt"
	DefaultQueue   = "assistant-workers"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	Subject string
	Queue   string
	// Timeout bounds the processing of one message.
	Timeout time.Duration
}

// Consumer answers prompt requests arriving over NATS request-reply.
type Consumer struct {
	l    log.Logger
	uc   assistant.UseCase
	conn *nats.Conn
	cfg  Config
	sub  *nats.Subscription
}

// New creates a Consumer on an established connection.
func New(l log.Logger, uc assistant.UseCase, conn *nats.Conn, cfg Config) *Consumer {
	if cfg.Subject == "" {
		cfg.Subject = DefaultSubject
	}
	if cfg.Queue == "" {
		cfg.Queue = DefaultQueue
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Consumer{l: l, uc: uc, conn: conn, cfg: cfg}
}
