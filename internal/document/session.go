package document

import (
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/recap/internal/transcript"
)

// Session owns the current document and the generation counter. Rebuilds
// take the write lock, so a commit can never land on a superseded document.
type Session struct {
	mu         sync.RWMutex
	generation uint64
	doc        *Document
}

func NewSession() *Session {
	return &Session{}
}

// Rebuild replaces the current document with a fresh build tagged with the
// next generation. All refinement state of the previous document is dropped.
func (s *Session) Rebuild(videoRef string, sections []Section, fragments []transcript.Fragment) *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.doc = Build(videoRef, s.generation, sections, fragments)
	return s.doc
}

// Adopt installs a restored document as current. The session generation
// moves to the document's generation, or past the current one if that is
// already higher.
func (s *Session) Adopt(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc.Generation <= s.generation {
		doc.Generation = s.generation + 1
	}
	s.generation = doc.Generation
	s.doc = doc
}

// Current returns the current document, or nil before the first build.
func (s *Session) Current() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

func (s *Session) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Target is what a refinement needs to know before calling out.
type Target struct {
	Generation uint64
	SectionID  string
	Title      string
	Transcript string
}

// Lookup resolves a section of the current document.
func (s *Session) Lookup(sectionID string) (Target, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil {
		return Target{}, ErrNoDocument
	}
	e, err := s.doc.Entry(sectionID)
	if err != nil {
		return Target{}, err
	}
	return Target{
		Generation: s.doc.Generation,
		SectionID:  sectionID,
		Title:      e.Section.Title,
		Transcript: e.Runtime.Transcript(),
	}, nil
}

// Commit overwrites a section summary. It fails with ErrStaleGeneration when
// generation no longer names the current document; nothing is applied then.
func (s *Session) Commit(generation uint64, sectionID string, style Style, summary string) error {
	if !style.Requestable() {
		return fmt.Errorf("%w: %q", ErrInvalidStyle, style)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.doc == nil || s.doc.Generation != generation {
		return fmt.Errorf("%w: result for generation %d, current %d", ErrStaleGeneration, generation, s.generation)
	}
	e, err := s.doc.Entry(sectionID)
	if err != nil {
		return err
	}
	e.Runtime.apply(summary, style)
	return nil
}
