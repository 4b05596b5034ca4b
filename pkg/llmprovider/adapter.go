package llmprovider

import (
	"context"

	"booking-assistant/pkg/gemini"
	"booking-assistant/pkg/groq"
)

const (
	providerGroq     = "groq"
	providerGemini   = "gemini"
	providerOpenAI   = "openai"
	providerQwen     = "qwen"
	providerDeepSeek = "deepseek"
)

// compatibleBaseURLs are the OpenAI-compatible endpoints served through pkg/groq.
var compatibleBaseURLs = map[string]string{
	providerGroq:     groq.DefaultBaseURL,
	providerOpenAI:   "https://api.openai.com/v1",
	providerQwen:     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	providerDeepSeek: "https://api.deepseek.com/v1",
}

// GroqAdapter adapts pkg/groq, or any OpenAI-compatible endpoint, to
// llmprovider.Provider interface
type GroqAdapter struct {
	client groq.IGroq
	name   string
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client, name: providerGroq}
}

// NewCompatibleAdapter names an OpenAI-compatible client after its vendor.
func NewCompatibleAdapter(name string, client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *GroqAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.ChatCompletion(ctx, &groq.Request{
		System:      req.SystemInstruction,
		Messages:    []groq.Message{{Role: "user", Content: req.UserText}},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		JSONMode:    req.JSONMode,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GroqAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *GroqAdapter) Model() string {
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
		SystemInstruction: req.SystemInstruction,
		Prompt:            req.UserText,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.JSONMode,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: providerGemini,
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
	return providerGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
