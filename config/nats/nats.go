package nats

import (
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"breeze/config"
)

// Connect dials NATS with unlimited reconnects.
func Connect(cfg config.NATSConfig, name string) (*nats.Conn, error) {
	if cfg.URL == "" {
		return nil, errors.New("nats url is empty")
	}

	conn, err := nats.Connect(cfg.URL,
		nats.Name(name),
		nats.Timeout(5*time.Second),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return conn, nil
}

// Disconnect drains pending messages, then closes the connection.
func Disconnect(conn *nats.Conn) {
	if conn == nil {
		return
	}
	if err := conn.Drain(); err != nil {
		conn.Close()
	}
}
