package http

import (
	"time"

	"breeze/internal/assistant"
	taskHTTP "breeze/internal/task/delivery/http"
)

type submitReq struct {
	Prompt string `json:"prompt"`
}

func (r submitReq) toInput() assistant.SubmitInput {
	return assistant.SubmitInput{Prompt: r.Prompt}
}

// clarifyResp asks the user for more input.
type clarifyResp struct {
	Intent   string                   `json:"intent"`
	TaskData assistant.ProvidedFields `json:"taskData"`
	Message  string                   `json:"message"`
}

// successResp reports a dispatched task.
type successResp struct {
	Success  bool              `json:"success"`
	TaskData taskHTTP.TaskResp `json:"taskData"`
	Message  string            `json:"message"`
}

type errorResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *handler) newSubmitResp(out assistant.SubmitOutput) any {
	if out.Dispatched {
		return successResp{
			Success:  true,
			TaskData: taskHTTP.NewTaskResp(out.Task),
			Message:  "",
		}
	}
	return clarifyResp{
		Intent:   string(out.Intent),
		TaskData: out.Fields,
		Message:  out.Message,
	}
}

type turnResp struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

type historyResp struct {
	Intent   string                   `json:"intent,omitempty"`
	TaskData assistant.ProvidedFields `json:"taskData"`
	Messages []turnResp               `json:"messages"`
}

func (h *handler) newHistoryResp(out assistant.HistoryOutput) historyResp {
	msgs := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		msgs[i] = turnResp{ID: t.ID, Text: t.Text, IsUser: t.IsUser, Timestamp: t.Timestamp}
	}
	return historyResp{
		Intent:   string(out.Intent),
		TaskData: out.Fields,
		Messages: msgs,
	}
}
