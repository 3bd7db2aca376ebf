package summarizer

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/nguyentantai21042004/recap/internal/config"
	"github.com/nguyentantai21042004/recap/internal/logger"
)

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func TestGeminiRotatesOnQuota(t *testing.T) {
	g, err := newGeminiBackend([]string{"k1", "k2", "k3"}, "gemini-2.5-flash", logger.NewNop())
	require.NoError(t, err)

	var used []string
	g.generate = func(_ context.Context, key, model string, _ []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		used = append(used, key)
		assert.Equal(t, "application/json", cfg.ResponseMIMEType)
		if key != "k3" {
			return nil, errors.New("Error 429, RESOURCE_EXHAUSTED")
		}
		return textResponse(`{"summary":"ok"}`), nil
	}

	out, err := g.Complete(context.Background(), "sys", "user")

	require.NoError(t, err)
	assert.Equal(t, `{"summary":"ok"}`, out)
	assert.Equal(t, []string{"k1", "k2", "k3"}, used)
	assert.Equal(t, 2, g.currentKey)
}

func TestGeminiExhaustsKeys(t *testing.T) {
	g, err := newGeminiBackend([]string{"k1", "k2"}, "m", logger.NewNop())
	require.NoError(t, err)
	g.generate = func(context.Context, string, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return nil, errors.New("quota exceeded")
	}

	_, err = g.Complete(context.Background(), "sys", "user")

	assert.ErrorContains(t, err, "all API keys exhausted")
}

func TestGeminiStopsOnOtherErrors(t *testing.T) {
	g, err := newGeminiBackend([]string{"k1", "k2"}, "m", logger.NewNop())
	require.NoError(t, err)
	calls := 0
	g.generate = func(context.Context, string, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		calls++
		return nil, errors.New("invalid argument")
	}

	_, err = g.Complete(context.Background(), "sys", "user")

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestGeminiEmptyResponse(t *testing.T) {
	g, err := newGeminiBackend([]string{"k1"}, "m", logger.NewNop())
	require.NoError(t, err)
	g.generate = func(context.Context, string, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return &genai.GenerateContentResponse{}, nil
	}

	_, err = g.Complete(context.Background(), "sys", "user")

	assert.ErrorContains(t, err, "empty response")
}

type fakeChat struct {
	req  openai.ChatCompletionRequest
	resp openai.ChatCompletionResponse
	err  error
}

func (f *fakeChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestOpenAIComplete(t *testing.T) {
	b, err := newOpenAIBackend(config.OpenAIConfig{APIKey: "sk", BaseURL: "https://api.deepseek.com", Model: "deepseek-chat", Temperature: 1, TopP: 1, MaxTokens: 1000})
	require.NoError(t, err)
	chat := &fakeChat{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: `{"summary":"x"}`}}},
	}}
	b.client = chat

	out, err := b.Complete(context.Background(), "sys", "user")

	require.NoError(t, err)
	assert.Equal(t, `{"summary":"x"}`, out)
	assert.Equal(t, "deepseek-chat", chat.req.Model)
	require.Len(t, chat.req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, chat.req.Messages[0].Role)
	assert.Equal(t, "user", chat.req.Messages[1].Content)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, chat.req.ResponseFormat.Type)
	assert.Equal(t, 1000, chat.req.MaxTokens)
}

func TestOpenAINoChoices(t *testing.T) {
	b, err := newOpenAIBackend(config.OpenAIConfig{APIKey: "sk", Model: "m"})
	require.NoError(t, err)
	b.client = &fakeChat{}

	_, err = b.Complete(context.Background(), "sys", "user")

	assert.Error(t, err)
}
