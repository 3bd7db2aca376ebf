package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/recap/internal/logger"
)

// generateFunc is the single Gemini call the backend makes.
type generateFunc func(ctx context.Context, apiKey, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

type geminiBackend struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
	generate   generateFunc
}

func newGeminiBackend(apiKeys []string, model string, log logger.Logger) (*geminiBackend, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("gemini: no API keys configured")
	}
	return &geminiBackend{
		apiKeys:  apiKeys,
		model:    model,
		logger:   log,
		generate: callGemini,
	}, nil
}

func (g *geminiBackend) Name() string {
	return "gemini/" + g.model
}

// Complete sends the prompt to Gemini, rotating API keys on 429 / quota errors.
func (g *geminiBackend) Complete(ctx context.Context, system, user string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		ResponseMIMEType:  "application/json",
	}

	var lastErr error
	for range len(g.apiKeys) {
		idx, key := g.key()

		result, err := g.generate(ctx, key, g.model, genai.Text(user), cfg)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateFrom(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			return text.String(), nil
		}

		return "", errors.New("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *geminiBackend) key() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

// rotateFrom advances past idx unless a concurrent caller already did.
func (g *geminiBackend) rotateFrom(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func callGemini(ctx context.Context, apiKey, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client.Models.GenerateContent(ctx, model, contents, cfg)
}
