// Package transcript normalizes provider output into ordered fragments.
package transcript

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/nguyentantai21042004/recap/internal/timecode"
)

// Fragment is one timestamped snippet of transcript text.
type Fragment struct {
	Start float64 `json:"start"`
	Text  string  `json:"text"`
}

// Gap describes a record dropped during ingestion.
type Gap struct {
	Index  int
	Reason string
}

func (g Gap) String() string {
	return fmt.Sprintf("record %d dropped: %s", g.Index, g.Reason)
}

// Decode parses a transcript payload. The payload must be a JSON array of
// records; elements that are not records are kept and reported by Ingest.
func Decode(data []byte) ([]RawRecord, error) {
	var raw []RawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	return raw, nil
}

// Ingest converts records into fragments in input order. Missing start
// defaults to 0 and missing text to "". Invalid records are skipped and
// returned as gaps; ordering and duplicates are left alone.
func Ingest(raw []RawRecord) ([]Fragment, []Gap) {
	fragments := make([]Fragment, 0, len(raw))
	var gaps []Gap
	for i, rec := range raw {
		if !rec.Valid() {
			gaps = append(gaps, Gap{Index: i, Reason: rec.Reason()})
			continue
		}
		var f Fragment
		if rec.Start != nil {
			f.Start = *rec.Start
		}
		if rec.Text != nil {
			f.Text = *rec.Text
		}
		fragments = append(fragments, f)
	}
	return fragments, gaps
}

// Store holds the fragments of one generation request. It never mutates them.
type Store struct {
	fragments []Fragment
}

// NewStore ingests raw records and returns the store plus any dropped records.
func NewStore(raw []RawRecord) (*Store, []Gap) {
	fragments, gaps := Ingest(raw)
	return &Store{fragments: fragments}, gaps
}

// Fragments returns a copy of the fragments.
func (s *Store) Fragments() []Fragment {
	return append([]Fragment(nil), s.fragments...)
}

func (s *Store) Len() int {
	return len(s.fragments)
}

// Span returns the earliest and latest fragment start. Input order is not
// assumed to be monotone.
func (s *Store) Span() (first, last float64, ok bool) {
	if len(s.fragments) == 0 {
		return 0, 0, false
	}
	earliest := lo.MinBy(s.fragments, func(a, b Fragment) bool { return a.Start < b.Start })
	latest := lo.MaxBy(s.fragments, func(a, b Fragment) bool { return a.Start > b.Start })
	return earliest.Start, latest.Start, true
}

// Text renders the transcript for a summarization prompt, one
// "HH:MM:SS: text" line per fragment.
func (s *Store) Text() string {
	lines := lo.Map(s.fragments, func(f Fragment, _ int) string {
		return timecode.Format(f.Start) + ": " + f.Text
	})
	return strings.Join(lines, "\n")
}
