package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/recap/internal/export"
)

// Process generates a document for a transcript or media file dropped into
// the input folder, writes the configured export formats, saves the document
// and archives the source.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting summary: %s", path)
	p.logger.Info(ctx, "========================================")

	doc, err := p.Generate(ctx, Request{
		Source:   path,
		VideoRef: p.sidecarVideoRef(ctx, path),
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	written, err := export.WriteAll(name, doc.Render(), p.cfg.Paths.Output, name, p.cfg.Export.Formats)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := p.save(ctx, name, doc); err != nil {
		p.logger.Warn(ctx, "Failed to save document %s: %v", doc.ID, err)
	}

	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move source to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Summary completed: document %s", doc.ID)
	for _, w := range written {
		p.logger.Info(ctx, "Output: %s", w)
	}
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")
	return nil
}
