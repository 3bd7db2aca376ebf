package document

import (
	"fmt"
	"time"
)

// Snapshot is a plain copy of a document used for persistence.
type Snapshot struct {
	ID         string
	VideoRef   string
	Generation uint64
	CreatedAt  time.Time
	Sections   []SectionSnapshot
}

type SectionSnapshot struct {
	ID              string
	Title           string
	Start           float64
	End             float64
	OriginalSummary string
	Transcript      string
	Summary         string
	Style           Style
}

func (d *Document) Snapshot() Snapshot {
	s := Snapshot{
		ID:         d.ID,
		VideoRef:   d.VideoRef,
		Generation: d.Generation,
		CreatedAt:  d.CreatedAt,
		Sections:   make([]SectionSnapshot, 0, len(d.entries)),
	}
	for _, e := range d.entries {
		summary, style := e.Runtime.State()
		s.Sections = append(s.Sections, SectionSnapshot{
			ID:              e.Runtime.ID(),
			Title:           e.Section.Title,
			Start:           e.Section.Start,
			End:             e.Section.End,
			OriginalSummary: e.Section.Summary,
			Transcript:      e.Runtime.Transcript(),
			Summary:         summary,
			Style:           style,
		})
	}
	return s
}

// Restore rebuilds a document from a snapshot without re-slicing the
// transcript. Section ids must follow the positional section_<i> scheme.
func Restore(s Snapshot) (*Document, error) {
	d := &Document{
		ID:         s.ID,
		VideoRef:   s.VideoRef,
		Generation: s.Generation,
		CreatedAt:  s.CreatedAt,
		entries:    make([]Entry, 0, len(s.Sections)),
		index:      make(map[string]int, len(s.Sections)),
	}
	for i, sec := range s.Sections {
		if sec.ID != SectionID(i) {
			return nil, fmt.Errorf("restore document %s: section %d has id %q", s.ID, i, sec.ID)
		}
		style := sec.Style
		if style == "" {
			style = StyleNone
		}
		rt := &SectionRuntime{
			id:         sec.ID,
			transcript: sec.Transcript,
			summary:    sec.Summary,
			style:      style,
		}
		d.index[rt.id] = i
		d.entries = append(d.entries, Entry{
			Section: Section{Title: sec.Title, Start: sec.Start, End: sec.End, Summary: sec.OriginalSummary},
			Runtime: rt,
		})
	}
	return d, nil
}
