package processor

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/recap/internal/videoref"
)

// sidecarVideoRef reads the first line of "<name>.url" next to the source,
// if present, as the video the document links to.
func (p *implProcessor) sidecarVideoRef(ctx context.Context, path string) string {
	sidecar := strings.TrimSuffix(path, filepath.Ext(path)) + ".url"
	f, err := os.Open(sidecar)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ""
	}
	ref := videoref.LinkBase(scanner.Text())
	p.logger.Debug(ctx, "Video reference from %s: %s", sidecar, ref)
	return ref
}

// moveToArchived moves the processed source, and its sidecar if any, out of
// the input folder so it is not picked up again.
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	p.logger.Info(ctx, "Archiving: %s -> %s", path, destPath)
	if err := os.Rename(path, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	sidecar := strings.TrimSuffix(path, filepath.Ext(path)) + ".url"
	if _, err := os.Stat(sidecar); err == nil {
		if err := os.Rename(sidecar, filepath.Join(p.cfg.Paths.Archived, filepath.Base(sidecar))); err != nil {
			p.logger.Warn(ctx, "Failed to archive %s: %v", sidecar, err)
		}
	}
	return nil
}
