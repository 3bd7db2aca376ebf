package processor

import (
	"context"

	"github.com/nguyentantai21042004/recap/internal/document"
	"github.com/nguyentantai21042004/recap/internal/store"
)

// Processor drives generation and refinement of the session's document.
type Processor interface {
	// Generate builds a fresh document from a source, replacing the current one.
	Generate(ctx context.Context, req Request) (*document.Document, error)
	// Refine regenerates one section's summary in the requested style.
	Refine(ctx context.Context, req RefineRequest) (Outcome, error)
	// RefineAll refines several sections, running distinct sections in parallel.
	RefineAll(ctx context.Context, reqs []RefineRequest) ([]Outcome, error)
	// Process is the watch-folder handler: generate, export, persist, archive.
	Process(ctx context.Context, path string) error
	// Resume loads a stored document and makes it current.
	Resume(ctx context.Context, id string) (*store.Record, error)
	// Persist saves the current document under title.
	Persist(ctx context.Context, title string) error
	Session() *document.Session
}

// Repository is the persistence the processor needs.
type Repository interface {
	Save(ctx context.Context, title string, snap document.Snapshot) error
	Load(ctx context.Context, id string) (*store.Record, error)
}

// Request describes one full document generation.
type Request struct {
	// Source is a transcript file (.json, .srt) or a media file.
	Source string
	// VideoRef is the link base section start offsets are appended to.
	VideoRef string
	// Language is the summary language; empty means summarizer.language.
	Language string
	// TranscriptLanguage is the spoken language hint for the transcriber.
	// Empty leaves the choice to the transcriber (whisper.language).
	TranscriptLanguage string
	Style              document.Style
}

// RefineRequest asks for one section to be rewritten.
type RefineRequest struct {
	SectionID string
	Style     document.Style
	Language  string
}

// Outcome reports what happened to one refinement.
type Outcome struct {
	SectionID  string
	Style      document.Style
	Generation uint64
	Summary    string
	Applied    bool
	// Stale is set when the document was rebuilt while the summarizer was
	// working; the result was discarded.
	Stale bool
	Err   error
}
