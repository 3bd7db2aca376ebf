package summarizer

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/recap/internal/config"
)

// chatCompleter is the part of the go-openai client the backend uses.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// openaiBackend talks to any OpenAI-compatible endpoint (DeepSeek, GitHub
// Models, OpenRouter).
type openaiBackend struct {
	client      chatCompleter
	model       string
	temperature float32
	topP        float32
	maxTokens   int
}

func newOpenAIBackend(cfg config.OpenAIConfig) (*openaiBackend, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai: api_key is required")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	return &openaiBackend{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

func (o *openaiBackend) Name() string {
	return "openai/" + o.model
}

func (o *openaiBackend) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: o.temperature,
		TopP:        o.topP,
		MaxTokens:   o.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
