package processor

import (
	"github.com/nguyentantai21042004/recap/internal/config"
	"github.com/nguyentantai21042004/recap/internal/document"
	"github.com/nguyentantai21042004/recap/internal/logger"
	"github.com/nguyentantai21042004/recap/internal/summarizer"
	"github.com/nguyentantai21042004/recap/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	session     *document.Session
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	repo        Repository
	logger      logger.Logger
}

// New creates a Processor owning a fresh session. repo may be nil, in which
// case nothing is persisted.
func New(cfg *config.Config, tr transcriber.Transcriber, sum summarizer.Summarizer, repo Repository, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		session:     document.NewSession(),
		transcriber: tr,
		summarizer:  sum,
		repo:        repo,
		logger:      log,
	}
}

func (p *implProcessor) Session() *document.Session {
	return p.session
}
