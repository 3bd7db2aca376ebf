package summarizer

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/recap/internal/document"
)

// Segment asks the model to split the whole transcript into sections.
func (s *implSummarizer) Segment(ctx context.Context, transcriptText string, style document.Style, language string) ([]document.Section, error) {
	s.logger.Info(ctx, "Segmenting transcript with %s (%d chars, style %s, language %s)",
		s.backend.Name(), len(transcriptText), style, language)

	reply, err := s.backend.Complete(ctx, buildSystem(language), buildSegmentPrompt(transcriptText, style))
	if err != nil {
		return nil, &CollaboratorError{Op: "segment", Err: err}
	}

	sections, err := parseSections(reply)
	if err != nil {
		s.logger.Debug(ctx, "Unusable segment reply: %s", reply)
		return nil, &CollaboratorError{Op: "segment", Err: err}
	}

	s.logger.Info(ctx, "Model declared %d sections", len(sections))
	return sections, nil
}

// Refine asks the model for a new summary of one section's transcript.
func (s *implSummarizer) Refine(ctx context.Context, style document.Style, sectionTranscript, language string) (string, error) {
	if !style.Requestable() {
		return "", fmt.Errorf("%w: %q", document.ErrInvalidStyle, style)
	}

	reply, err := s.backend.Complete(ctx, buildSystem(language), buildRefinePrompt(sectionTranscript, style))
	if err != nil {
		return "", &CollaboratorError{Op: "refine", Err: err}
	}

	summary, err := parseSummary(reply)
	if err != nil {
		s.logger.Debug(ctx, "Unusable refine reply: %s", reply)
		return "", &CollaboratorError{Op: "refine", Err: err}
	}
	return summary, nil
}
