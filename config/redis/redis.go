package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"breeze/config"
)

// Connect parses the session redis URL and pings the server.
func Connect(ctx context.Context, cfg config.SessionConfig) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, errors.New("redis url is empty")
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}

// Disconnect closes the client.
func Disconnect(client *redis.Client) {
	if client != nil {
		client.Close()
	}
}
