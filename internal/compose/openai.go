// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/paperforge/pkg/types"
)

// Defaults for the writing model.
const (
	defaultModel       = "gpt-4o-mini"
	defaultTemperature = 0.7
)

// OpenAIBackend generates paper text through the OpenAI chat
// completions API.
type OpenAIBackend struct {
	model       string
	temperature float64
	opts        []option.RequestOption
}

// NewOpenAIBackend builds a backend from config. BaseURL is optional
// and exists so tests can point the client at an httptest server.
func NewOpenAIBackend(cfg types.WriterConfig) (*OpenAIBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key not configured")
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIBackend{model: model, temperature: temperature, opts: opts}, nil
}

// Name returns the backend identifier.
func (b *OpenAIBackend) Name() string { return "openai" }

// Generate sends the prompt as a single user message and returns the
// first choice.
func (b *OpenAIBackend) Generate(ctx context.Context, prompt string) (string, error) {
	client := openai.NewClient(b.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(b.model),
		Temperature: openai.Float(b.temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
