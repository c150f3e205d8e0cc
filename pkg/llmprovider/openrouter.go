package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel   = "meta-llama/llama-3.3-70b-instruct"
)

// OpenRouterAdapter talks to OpenRouter through its OpenAI-compatible API.
type OpenRouterAdapter struct {
	client openai.Client
	model  string
}

// CompatConfig configures adapters for OpenAI-compatible endpoints.
type CompatConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewOpenRouterAdapter creates a new OpenRouter adapter
func NewOpenRouterAdapter(cfg CompatConfig) (*OpenRouterAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultOpenRouterBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultOpenRouterModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		// the chain owns fallback; the SDK must not retry 429s on its own
		option.WithMaxRetries(0),
		option.WithHeader("X-Title", "breeze"),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &OpenRouterAdapter{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

// GenerateContent implements Provider interface
func (a *OpenRouterAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 512
	}

	params := openai.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemInstruction),
			openai.UserMessage(req.Prompt),
		},
		MaxTokens: openai.Int(int64(maxTokens)),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		status := 0
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return nil, NewProviderError(a.Name(), status, err)
	}

	out := &Response{
		ProviderName: a.Name(),
		ModelName:    a.model,
		Usage: &Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:  int(resp.Usage.TotalTokens),
		},
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	return out, nil
}

// Name returns provider name
func (a *OpenRouterAdapter) Name() string {
	return ProviderOpenRouter
}

// Model returns model name
func (a *OpenRouterAdapter) Model() string {
	return a.model
}
