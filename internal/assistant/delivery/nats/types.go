package nats

// PromptMessage is the request and reply envelope on the prompt subject.
// The reply echoes SessionID and Prompt and adds Status and the result fields.
// TaskData carries the collected fields on a clarification and the task
// entity once dispatched, as the HTTP endpoint does.
type PromptMessage struct {
	SessionID string `json:"sessionId"`
	Prompt    string `json:"prompt"`

	Status   int    `json:"status,omitempty"`
	Success  bool   `json:"success,omitempty"`
	Intent   string `json:"intent,omitempty"`
	TaskData any    `json:"taskData,omitempty"`
	Message  string `json:"message"`
}
