package llmprovider

import (
	"context"
	"errors"

	"breeze/pkg/gemini"
	"breeze/pkg/togetherai"
)

// TogetherAIAdapter adapts pkg/togetherai to llmprovider.Provider interface
type TogetherAIAdapter struct {
	client togetherai.ITogetherAI
}

// NewTogetherAIAdapter creates a new Together AI adapter
func NewTogetherAIAdapter(client togetherai.ITogetherAI) *TogetherAIAdapter {
	return &TogetherAIAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *TogetherAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &togetherai.Request{
		System:      req.SystemInstruction,
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		status := 0
		var apiErr *togetherai.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return nil, NewProviderError(a.Name(), status, err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *TogetherAIAdapter) Name() string {
	return ProviderTogetherAI
}

// Model returns model name
func (a *TogetherAIAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		System:      req.SystemInstruction,
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		status := 0
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return nil, NewProviderError(a.Name(), status, err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
