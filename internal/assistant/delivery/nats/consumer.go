package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nats-io/nats.go"

	"breeze/internal/assistant"
	"breeze/internal/model"
	taskHTTP "breeze/internal/task/delivery/http"
	"breeze/pkg/log"
)

// Start subscribes to the prompt subject in the configured queue group.
func (c *Consumer) Start(ctx context.Context) error {
	sub, err := c.conn.QueueSubscribe(c.cfg.Subject, c.cfg.Queue, func(msg *nats.Msg) {
		c.onMessage(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("subscribe to %s: %w", c.cfg.Subject, err)
	}
	c.sub = sub
	c.l.Infof(ctx, "assistant.delivery.nats: subscribed to %s (queue %s)", c.cfg.Subject, c.cfg.Queue)
	return nil
}

// Drain stops receiving and waits for in-flight messages to finish.
func (c *Consumer) Drain() error {
	if c.sub == nil {
		return nil
	}
	return c.sub.Drain()
}

func (c *Consumer) onMessage(ctx context.Context, msg *nats.Msg) {
	reply := c.handle(ctx, msg.Data)
	if msg.Reply == "" {
		return
	}
	data, err := json.Marshal(reply)
	if err != nil {
		c.l.Errorf(ctx, "assistant.delivery.nats marshal reply: %v", err)
		return
	}
	if err := msg.Respond(data); err != nil {
		c.l.Errorf(ctx, "assistant.delivery.nats respond: %v", err)
	}
}

// handle processes one request payload and builds its reply.
func (c *Consumer) handle(ctx context.Context, data []byte) PromptMessage {
	var req PromptMessage
	if err := json.Unmarshal(data, &req); err != nil {
		c.l.Warnf(ctx, "assistant.delivery.nats invalid payload: %v", err)
		return PromptMessage{Status: http.StatusBadRequest, Message: "invalid request format"}
	}

	reply := PromptMessage{SessionID: req.SessionID, Prompt: req.Prompt}
	if req.SessionID == "" {
		reply.Status = http.StatusBadRequest
		reply.Message = "sessionId is required"
		return reply
	}

	ctx, cancel := context.WithTimeout(context.WithValue(ctx, log.SessionIDKey, req.SessionID), c.cfg.Timeout)
	defer cancel()

	out, err := c.uc.SubmitPrompt(ctx, model.NewScope(req.SessionID), assistant.SubmitInput{Prompt: req.Prompt})
	if err != nil {
		c.l.Errorf(ctx, "assistant.delivery.nats SubmitPrompt: %v", err)
		reply.Status = assistant.StatusFor(err)
		reply.Message = assistant.ReplyFor(err)
		return reply
	}

	reply.Status = http.StatusOK
	reply.Intent = string(out.Intent)
	if out.Dispatched {
		reply.Success = true
		reply.TaskData = taskHTTP.NewTaskResp(out.Task)
		return reply
	}
	reply.TaskData = out.Fields
	reply.Message = out.Message
	return reply
}
