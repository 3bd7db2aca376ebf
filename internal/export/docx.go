package export

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/recap/internal/document"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var reBold = regexp.MustCompile(`\*\*(.+?)\*\*`)

// WriteDocx writes the export as a styled Word document.
func WriteDocx(title string, e document.Export, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	if e.VideoRef != "" {
		addStyledRun(doc.AddParagraph(""), e.VideoRef, false, 11)
	}

	for _, blk := range e.Blocks {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), blk.Title, true, 15)

		rangeLabel := timeRange(blk)
		if blk.Link != "" {
			rangeLabel += "  " + blk.Link
		}
		addStyledRun(doc.AddParagraph(""), rangeLabel, false, 11)

		addStyledRun(doc.AddParagraph(""), "Summary", true, 14)
		for _, line := range strings.Split(blk.Summary, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				addRichText(doc.AddParagraph(""), trimmed)
			}
		}

		addStyledRun(doc.AddParagraph(""), "Transcript", true, 14)
		for _, line := range strings.Split(blk.Transcript, "\n") {
			doc.AddParagraph("").AddText(line).Font(fontName).Size(11).Color("333333")
		}
	}

	return doc.SaveTo(outputPath)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	text = cleanMarkdownInline(text)
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText keeps **bold** spans from model output as bold runs.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
