package document

import (
	"strconv"

	"github.com/nguyentantai21042004/recap/internal/timecode"
)

// Export is the portable form of a document: one block per section, in
// summarizer order.
type Export struct {
	DocumentID string
	VideoRef   string
	Generation uint64
	Blocks     []Block
}

// Block is one exported section.
type Block struct {
	ID           string
	Title        string
	Start        string
	End          string
	StartSeconds int
	Link         string
	Transcript   string
	Summary      string
	Style        Style
}

// Render produces the export of the current state.
func (d *Document) Render() Export {
	out := Export{
		DocumentID: d.ID,
		VideoRef:   d.VideoRef,
		Generation: d.Generation,
		Blocks:     make([]Block, 0, len(d.entries)),
	}
	for _, e := range d.entries {
		summary, style := e.Runtime.State()
		start := timecode.Format(e.Section.Start)
		offset := timecode.Offset(e.Section.Start)
		b := Block{
			ID:           e.Runtime.ID(),
			Title:        e.Section.Title,
			Start:        start,
			End:          timecode.Format(e.Section.End),
			StartSeconds: offset,
			Transcript:   e.Runtime.Transcript(),
			Summary:      summary,
			Style:        style,
		}
		if d.VideoRef != "" {
			b.Link = d.VideoRef + strconv.Itoa(offset)
		}
		out.Blocks = append(out.Blocks, b)
	}
	return out
}
