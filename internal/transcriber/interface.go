package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/recap/internal/transcript"
)

// Transcriber yields the raw timestamped records for a source. Its output is
// only ever consumed through transcript.Ingest.
type Transcriber interface {
	Fetch(ctx context.Context, source, languageHint string) ([]transcript.RawRecord, error)
}
