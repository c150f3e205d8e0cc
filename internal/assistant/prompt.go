package assistant

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

const instructionTemplate = `You are a task management assistant. Analyze user prompts to extract intent (create, update, delete) and task details (title, description, dueDate, priority).
Priority must be 'high', 'medium', or 'low'. dueDate must be a calendar date formatted YYYY-MM-DD; today is %s.

If the intent is 'create', ensure all required fields (title, description, dueDate, priority) are provided.
If the intent is 'update' or 'delete', the task is identified by taskId.
If any required fields are missing, return a JSON object with:
- "intent": (detected intent)
- "providedFields": (an object containing only the provided task details)
- "message": (a message prompting the user for missing fields).

The key containing the task details must always be named "providedFields".
Respond only with a valid JSON object enclosed in triple backticks as follows:

` + "```json" + `
{"intent": "create", "providedFields": {"title": "Task Title", "description": "Task Description", "dueDate": "YYYY-MM-DD", "priority": "high"}, "message": ""}
` + "```" + `

The object must satisfy this JSON Schema:
%s`

var responseSchema = mustSchema()

func mustSchema() string {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	b, err := json.Marshal(reflector.Reflect(&IntentResponse{}))
	if err != nil {
		panic(fmt.Sprintf("assistant: marshal response schema: %v", err))
	}
	return string(b)
}

// SystemInstruction is the fixed instruction sent to every provider.
func SystemInstruction(today time.Time) string {
	return fmt.Sprintf(instructionTemplate, today.Format("2006-01-02"), responseSchema)
}

// BuildPrompt appends the already-known fields to the utterance as
// "utterance, key value, key value" so stateless providers see earlier turns.
func BuildPrompt(utterance string, known ProvidedFields) string {
	utterance = strings.TrimSpace(utterance)
	pairs := knownPairs(known)
	if len(pairs) == 0 {
		return utterance
	}
	return utterance + ", " + strings.Join(pairs, ", ")
}

func knownPairs(f ProvidedFields) []string {
	var pairs []string
	add := func(k, v string) {
		if v != "" {
			pairs = append(pairs, k+" "+v)
		}
	}
	add(FieldTitle, f.Title)
	add(FieldDescription, f.Description)
	add(FieldDueDate, f.DueDate)
	add(FieldPriority, f.Priority)
	add(FieldTaskID, f.TaskID)
	add("projectId", f.ProjectID)
	return pairs
}

// DecodeIntentResponse extracts the fenced json block from raw provider text and parses it.
func DecodeIntentResponse(raw string) (IntentResponse, error) {
	var out IntentResponse

	m := fencedJSON.FindStringSubmatch(raw)
	if len(m) < 2 {
		return out, ErrNoJSONBlock
	}
	if err := json.Unmarshal([]byte(m[1]), &out); err != nil {
		return out, fmt.Errorf("parse intent json: %w", err)
	}
	return out, nil
}
