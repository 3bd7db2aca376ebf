package summarizer

import (
	"fmt"

	"github.com/nguyentantai21042004/recap/internal/config"
	"github.com/nguyentantai21042004/recap/internal/logger"
)

type implSummarizer struct {
	backend Backend
	logger  logger.Logger
}

// New creates the Summarizer for the configured provider.
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	var (
		b   Backend
		err error
	)
	switch cfg.Summarizer.Provider {
	case config.ProviderGemini:
		b, err = newGeminiBackend(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
	case config.ProviderOpenAI:
		b, err = newOpenAIBackend(cfg.OpenAI)
	default:
		err = fmt.Errorf("unknown provider %q", cfg.Summarizer.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("create summarizer: %w", err)
	}
	return NewWithBackend(b, log), nil
}

// NewWithBackend wraps any Backend.
func NewWithBackend(b Backend, log logger.Logger) Summarizer {
	return &implSummarizer{
		backend: b,
		logger:  log,
	}
}
