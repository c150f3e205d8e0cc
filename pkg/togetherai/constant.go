package togetherai

import "time"

const (
	// DefaultModel is the default Together AI model
	DefaultModel = "meta-llama/Llama-3.3-70B-Instruct-Turbo"

	// DefaultBaseURL is the default Together AI endpoint
	DefaultBaseURL = "https://api.together.xyz/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// DefaultMaxTokens caps completions when the caller leaves MaxTokens unset
	DefaultMaxTokens = 512
)
