package summarizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/recap/internal/document"
)

// Summarizer asks a language model to segment a transcript into sections and
// to rewrite a single section's summary.
type Summarizer interface {
	Segment(ctx context.Context, transcriptText string, style document.Style, language string) ([]document.Section, error)
	Refine(ctx context.Context, style document.Style, sectionTranscript, language string) (string, error)
}

// Backend sends one prompt pair to a model and returns the raw reply.
type Backend interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
}

// ErrCollaborator is matched by every CollaboratorError.
var ErrCollaborator = errors.New("collaborator failure")

// CollaboratorError reports a failed call or an unusable reply.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

func (e *CollaboratorError) Is(target error) bool {
	return target == ErrCollaborator
}
