// Package document holds the summary document: the ordered sections declared
// by the summarizer, each paired with the runtime state refinement mutates.
package document

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/recap/internal/segment"
	"github.com/nguyentantai21042004/recap/internal/transcript"
)

// Section is a summarizer-declared time range. End > Start is not guaranteed.
type Section struct {
	Title   string
	Start   float64
	End     float64
	Summary string
}

// SectionRuntime is the mutable state of one section. The rendered
// transcript is fixed at build time; the summary and style change on
// refinement.
type SectionRuntime struct {
	id         string
	transcript string

	mu      sync.RWMutex
	summary string
	style   Style
}

func (r *SectionRuntime) ID() string {
	return r.id
}

// Transcript returns the section's rendered transcript slice.
func (r *SectionRuntime) Transcript() string {
	return r.transcript
}

// State returns the current summary and the style last applied to it.
func (r *SectionRuntime) State() (string, Style) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.summary, r.style
}

func (r *SectionRuntime) Summary() string {
	s, _ := r.State()
	return s
}

func (r *SectionRuntime) LastStyle() Style {
	_, st := r.State()
	return st
}

func (r *SectionRuntime) apply(summary string, style Style) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summary = summary
	r.style = style
}

// Entry pairs a declared section with its runtime.
type Entry struct {
	Section Section
	Runtime *SectionRuntime
}

// Document is one full build of the summary. It is replaced, never merged,
// when a new top-level summary is generated.
type Document struct {
	ID         string
	VideoRef   string
	Generation uint64
	CreatedAt  time.Time

	entries []Entry
	index   map[string]int
}

// SectionID is the stable positional identifier of the i-th section.
func SectionID(i int) string {
	return fmt.Sprintf("section_%d", i)
}

// Build slices the transcript for every section in the order given and seeds
// each runtime with the section's own summary.
func Build(videoRef string, generation uint64, sections []Section, fragments []transcript.Fragment) *Document {
	d := &Document{
		ID:         uuid.NewString(),
		VideoRef:   videoRef,
		Generation: generation,
		CreatedAt:  time.Now().UTC(),
		entries:    make([]Entry, 0, len(sections)),
		index:      make(map[string]int, len(sections)),
	}
	for i, sec := range sections {
		rt := &SectionRuntime{
			id:         SectionID(i),
			transcript: segment.ComputeSlice(fragments, sec.Start, sec.End),
			summary:    sec.Summary,
			style:      StyleNone,
		}
		d.index[rt.id] = i
		d.entries = append(d.entries, Entry{Section: sec, Runtime: rt})
	}
	return d
}

func (d *Document) Len() int {
	return len(d.entries)
}

// Entries returns the sections in summarizer order.
func (d *Document) Entries() []Entry {
	return append([]Entry(nil), d.entries...)
}

// Entry looks a section up by id.
func (d *Document) Entry(id string) (Entry, error) {
	i, ok := d.index[id]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrSectionNotFound, id)
	}
	return d.entries[i], nil
}
