package export

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/recap/internal/document"
)

// Markdown renders the export as a markdown document.
func Markdown(title string, e document.Export) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if e.VideoRef != "" {
		fmt.Fprintf(&b, "_Source: %s_\n\n", e.VideoRef)
	}

	for _, blk := range e.Blocks {
		fmt.Fprintf(&b, "## %s\n\n", blk.Title)
		if blk.Link != "" {
			fmt.Fprintf(&b, "[%s](%s)\n\n", timeRange(blk), blk.Link)
		} else {
			fmt.Fprintf(&b, "%s\n\n", timeRange(blk))
		}
		fmt.Fprintf(&b, "### Summary\n\n%s\n\n", strings.TrimSpace(blk.Summary))
		f := fence(blk.Transcript)
		fmt.Fprintf(&b, "### Transcript\n\n%s\n%s\n%s\n\n", f, blk.Transcript, f)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// fence returns a backtick fence longer than any backtick run in s.
func fence(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return strings.Repeat("`", max(3, longest+1))
}
