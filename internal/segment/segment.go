// Package segment slices a transcript into the fragments that fall inside a
// section's time range and renders them for display.
package segment

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/recap/internal/timecode"
	"github.com/nguyentantai21042004/recap/internal/transcript"
)

// Select returns the fragments with start <= f.Start < end, in their original
// relative order. A range with start >= end selects nothing.
func Select(fragments []transcript.Fragment, start, end float64) []transcript.Fragment {
	if start >= end {
		return nil
	}
	var out []transcript.Fragment
	for _, f := range fragments {
		if f.Start >= start && f.Start < end {
			out = append(out, f)
		}
	}
	return out
}

// ComputeSlice renders the fragments of [start, end) as "(HH:MM:SS) text"
// lines, or the empty-range placeholder when nothing matches.
func ComputeSlice(fragments []transcript.Fragment, start, end float64) string {
	selected := Select(fragments, start, end)
	if len(selected) == 0 {
		return Placeholder(start, end)
	}
	var b strings.Builder
	for i, f := range selected {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "(%s) %s", timecode.Format(f.Start), f.Text)
	}
	return b.String()
}

// Placeholder names an empty range.
func Placeholder(start, end float64) string {
	return fmt.Sprintf("No transcript entries found for this section (%s to %s).",
		timecode.Format(start), timecode.Format(end))
}
