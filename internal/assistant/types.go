package assistant

import (
	"time"

	"breeze/internal/model"
)

// Intent is the task operation the user asked for.
type Intent string

const (
	IntentCreate Intent = "create"
	IntentUpdate Intent = "update"
	IntentDelete Intent = "delete"
)

// ProvidedFields is the partial task collected across conversation turns.
// Empty strings mean "not provided yet".
type ProvidedFields struct {
	Title       string `json:"title,omitempty"       jsonschema:"description=Short task title"`
	Description string `json:"description,omitempty" jsonschema:"description=What the task is about"`
	DueDate     string `json:"dueDate,omitempty"     jsonschema:"description=Due date as YYYY-MM-DD"`
	Priority    string `json:"priority,omitempty"    jsonschema:"enum=high,enum=medium,enum=low"`
	TaskID      string `json:"taskId,omitempty"      jsonschema:"description=Identifier of the task to update or delete"`
	ProjectID   string `json:"projectId,omitempty"   jsonschema:"description=Optional project the task belongs to"`
}

// HasChanges reports whether any field an update can write is set.
func (f ProvidedFields) HasChanges() bool {
	return f.Title != "" || f.Description != "" || f.DueDate != "" || f.Priority != ""
}

// IsEmpty reports whether no field has been collected.
func (f ProvidedFields) IsEmpty() bool {
	return f == (ProvidedFields{})
}

// IntentResponse is the structured object a provider must return inside a fenced json block.
type IntentResponse struct {
	Intent         string         `json:"intent"         jsonschema:"required,enum=create,enum=update,enum=delete"`
	ProvidedFields ProvidedFields `json:"providedFields" jsonschema:"required"`
	Message        string         `json:"message"        jsonschema:"description=Question asking the user for missing fields; empty when complete"`
}

// Draft is the state a turn is resolved against. Fields holds everything
// collected in the session; Changed holds only what was supplied since Intent
// became pending, which is what an update may write.
type Draft struct {
	Intent  Intent
	Fields  ProvidedFields
	Changed ProvidedFields
}

// Outcome is the result of resolving one provider response against a Draft.
// When Ready is false, Message asks the user for Missing.
type Outcome struct {
	Intent  Intent
	Fields  ProvidedFields
	Changed ProvidedFields
	Ready   bool
	Missing []string
	Message string
}

// Draft returns the state to resolve the next turn against.
func (o Outcome) Draft() Draft {
	return Draft{Intent: o.Intent, Fields: o.Fields, Changed: o.Changed}
}

// ConversationTurn is one chat message in a session transcript.
type ConversationTurn struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is the per-session assistant state.
type Conversation struct {
	SessionID string             `json:"sessionId"`
	Intent    Intent             `json:"intent,omitempty"`
	Fields    ProvidedFields     `json:"fields"`
	Changed   ProvidedFields     `json:"changed"`
	Turns     []ConversationTurn `json:"turns"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Draft is the pending state of the conversation.
func (c Conversation) Draft() Draft {
	return Draft{Intent: c.Intent, Fields: c.Fields, Changed: c.Changed}
}

// --- UseCase Inputs / Outputs ---

type SubmitInput struct {
	Prompt string
}

// SubmitOutput is either a clarification (Dispatched false) or a dispatched task.
type SubmitOutput struct {
	Intent     Intent
	Fields     ProvidedFields
	Message    string
	Dispatched bool
	Task       model.Task
}

type HistoryOutput struct {
	Intent Intent
	Fields ProvidedFields
	Turns  []ConversationTurn
}
