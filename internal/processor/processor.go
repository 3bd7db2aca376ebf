package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/recap/internal/document"
	"github.com/nguyentantai21042004/recap/internal/store"
	"github.com/nguyentantai21042004/recap/internal/summarizer"
	"github.com/nguyentantai21042004/recap/internal/timecode"
	"github.com/nguyentantai21042004/recap/internal/transcript"
)

// ErrEmptyTranscript is returned when a source yields no usable fragments.
var ErrEmptyTranscript = errors.New("transcript has no usable entries")

// Generate runs transcriber, ingestion and segmentation, then replaces the
// session document. On any failure the previous document stays current.
func (p *implProcessor) Generate(ctx context.Context, req Request) (*document.Document, error) {
	startTime := time.Now()
	req = p.withDefaults(req)

	p.logger.Info(ctx, "Generating summary for %s (language %s, style %s)", req.Source, req.Language, req.Style)

	records, err := p.transcriber.Fetch(ctx, req.Source, req.TranscriptLanguage)
	if err != nil {
		return nil, &summarizer.CollaboratorError{Op: "fetch", Err: err}
	}

	ts, gaps := transcript.NewStore(records)
	for _, g := range gaps {
		p.logger.Warn(ctx, "Ingest gap in %s: %s", req.Source, g)
	}
	first, last, ok := ts.Span()
	if !ok {
		return nil, fmt.Errorf("%s: %w", req.Source, ErrEmptyTranscript)
	}
	p.logger.Debug(ctx, "Transcript %s: %d fragments spanning %s to %s",
		req.Source, ts.Len(), timecode.Format(first), timecode.Format(last))

	sections, err := p.summarizer.Segment(ctx, ts.Text(), req.Style, req.Language)
	if err != nil {
		return nil, err
	}

	doc := p.session.Rebuild(req.VideoRef, sections, ts.Fragments())

	p.logger.Info(ctx, "Document %s generation %d: %d sections from %d fragments in %s",
		doc.ID, doc.Generation, doc.Len(), ts.Len(), time.Since(startTime).Round(time.Millisecond))
	return doc, nil
}

func (p *implProcessor) withDefaults(req Request) Request {
	if req.Language == "" {
		req.Language = p.cfg.Summarizer.Language
	}
	if req.Style == "" || req.Style == document.StyleNone {
		if st, err := document.ParseStyle(p.cfg.Summarizer.Style); err == nil {
			req.Style = st
		} else {
			req.Style = document.StyleDetailed
		}
	}
	return req
}

// Resume makes a stored document current.
func (p *implProcessor) Resume(ctx context.Context, id string) (*store.Record, error) {
	if p.repo == nil {
		return nil, errors.New("no repository configured")
	}
	rec, err := p.repo.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", id, err)
	}
	doc, err := document.Restore(rec.Snapshot)
	if err != nil {
		return nil, err
	}
	p.session.Adopt(doc)
	rec.Snapshot.Generation = doc.Generation
	return rec, nil
}

// Persist saves the current document. Without a repository it does nothing.
func (p *implProcessor) Persist(ctx context.Context, title string) error {
	if p.repo == nil {
		return nil
	}
	doc := p.session.Current()
	if doc == nil {
		return document.ErrNoDocument
	}
	return p.save(ctx, title, doc)
}

func (p *implProcessor) save(ctx context.Context, title string, doc *document.Document) error {
	if p.repo == nil {
		return nil
	}
	if err := p.repo.Save(ctx, title, doc.Snapshot()); err != nil {
		return fmt.Errorf("save document %s: %w", doc.ID, err)
	}
	p.logger.Debug(ctx, "Saved document %s (generation %d)", doc.ID, doc.Generation)
	return nil
}
