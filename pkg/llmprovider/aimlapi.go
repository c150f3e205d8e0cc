package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"
)

const (
	defaultAIMLBaseURL = "https://api.aimlapi.com/v1"
	defaultAIMLModel   = "gpt-4o-mini"
)

var statusCodePattern = regexp.MustCompile(`status code: (\d{3})`)

// AIMLAdapter talks to AI/ML API through langchaingo's OpenAI driver.
type AIMLAdapter struct {
	llm   llms.Model
	model string
}

// NewAIMLAdapter creates a new AI/ML API adapter
func NewAIMLAdapter(cfg CompatConfig) (*AIMLAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("aimlapi: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultAIMLBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultAIMLModel
	}

	opts := []lcopenai.Option{
		lcopenai.WithToken(cfg.APIKey),
		lcopenai.WithBaseURL(cfg.BaseURL),
		lcopenai.WithModel(cfg.Model),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, lcopenai.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}

	llm, err := lcopenai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("aimlapi: %w", err)
	}
	return &AIMLAdapter{llm: llm, model: cfg.Model}, nil
}

// GenerateContent implements Provider interface
func (a *AIMLAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 512
	}

	msgs := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, req.SystemInstruction),
		llms.TextParts(llms.ChatMessageTypeHuman, req.Prompt),
	}
	callOpts := []llms.CallOption{llms.WithMaxTokens(maxTokens)}
	if req.Temperature > 0 {
		callOpts = append(callOpts, llms.WithTemperature(req.Temperature))
	}

	resp, err := a.llm.GenerateContent(ctx, msgs, callOpts...)
	if err != nil {
		return nil, NewProviderError(a.Name(), statusFromMessage(err.Error()), err)
	}

	out := &Response{
		ProviderName: a.Name(),
		ModelName:    a.model,
		Usage:        &Usage{},
	}
	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		out.Text = choice.Content
		out.Usage.InputTokens = intFromInfo(choice.GenerationInfo, "PromptTokens")
		out.Usage.OutputTokens = intFromInfo(choice.GenerationInfo, "CompletionTokens")
		out.Usage.TotalTokens = intFromInfo(choice.GenerationInfo, "TotalTokens")
	}
	return out, nil
}

// Name returns provider name
func (a *AIMLAdapter) Name() string {
	return ProviderAIMLAPI
}

// Model returns model name
func (a *AIMLAdapter) Model() string {
	return a.model
}

// statusFromMessage recovers the HTTP status langchaingo folds into its error text.
func statusFromMessage(msg string) int {
	if m := statusCodePattern.FindStringSubmatch(msg); len(m) == 2 {
		if code, err := strconv.Atoi(m[1]); err == nil {
			return code
		}
	}
	if strings.Contains(strings.ToLower(msg), "rate limit") {
		return http.StatusTooManyRequests
	}
	return 0
}

func intFromInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
