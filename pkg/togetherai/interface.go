package togetherai

import "context"

// ITogetherAI defines the interface for the Together AI chat completions client.
// Implementations are safe for concurrent use.
type ITogetherAI interface {
	// GenerateContent sends a chat completion request
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Together AI client with the given configuration
func New(cfg Config) (ITogetherAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newTogetherImpl(cfg), nil
}
