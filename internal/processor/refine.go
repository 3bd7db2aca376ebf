package processor

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/recap/internal/document"
)

// Refine asks the summarizer for a new summary of one section and commits it.
// A failed call leaves the section untouched. A result for a document that
// was rebuilt meanwhile is dropped and reported as Stale, not as an error.
func (p *implProcessor) Refine(ctx context.Context, req RefineRequest) (Outcome, error) {
	out := Outcome{SectionID: req.SectionID, Style: req.Style}
	if !req.Style.Requestable() {
		return out, fmt.Errorf("%w: %q", document.ErrInvalidStyle, req.Style)
	}
	if req.Language == "" {
		req.Language = p.cfg.Summarizer.Language
	}

	target, err := p.session.Lookup(req.SectionID)
	if err != nil {
		return out, err
	}
	out.Generation = target.Generation

	p.logger.Info(ctx, "Refining %s (%q) as %s", target.SectionID, target.Title, req.Style)

	summary, err := p.summarizer.Refine(ctx, req.Style, target.Transcript, req.Language)
	if err != nil {
		return out, fmt.Errorf("refine %s: %w", req.SectionID, err)
	}
	if err := ctx.Err(); err != nil {
		return out, fmt.Errorf("refine %s: %w", req.SectionID, err)
	}

	if err := p.session.Commit(target.Generation, req.SectionID, req.Style, summary); err != nil {
		if errors.Is(err, document.ErrStaleGeneration) {
			p.logger.Warn(ctx, "Ignoring refinement of %s: %v", req.SectionID, err)
			out.Stale = true
			return out, nil
		}
		return out, err
	}

	out.Summary = summary
	out.Applied = true
	return out, nil
}

// RefineAll runs requests for distinct sections concurrently, bounded by
// performance.max_concurrent. Requests for the same section run in slice
// order. Each failure is scoped to its own request and reported in its
// Outcome; the returned error joins them.
func (p *implProcessor) RefineAll(ctx context.Context, reqs []RefineRequest) ([]Outcome, error) {
	outcomes := make([]Outcome, len(reqs))

	order := make([]string, 0, len(reqs))
	bySection := make(map[string][]int)
	for i, r := range reqs {
		if _, seen := bySection[r.SectionID]; !seen {
			order = append(order, r.SectionID)
		}
		bySection[r.SectionID] = append(bySection[r.SectionID], i)
	}

	var g errgroup.Group
	g.SetLimit(max(p.cfg.Performance.MaxConcurrent, 1))
	for _, id := range order {
		indexes := bySection[id]
		g.Go(func() error {
			for _, i := range indexes {
				out, err := p.Refine(ctx, reqs[i])
				out.Err = err
				outcomes[i] = out
			}
			return nil
		})
	}
	// Group functions always return nil; failures are kept per outcome.
	_ = g.Wait()

	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return outcomes, errors.Join(errs...)
}
