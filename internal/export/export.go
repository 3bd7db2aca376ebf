// Package export writes a rendered summary document as markdown, HTML or DOCX.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/recap/internal/document"
)

const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatDocx     = "docx"
)

var extensions = map[string]string{
	FormatMarkdown: ".md",
	FormatHTML:     ".html",
	FormatDocx:     ".docx",
}

// WriteAll writes one file per format into dir, named baseName plus the
// format's extension, and returns the written paths.
func WriteAll(title string, e document.Export, dir, baseName string, formats []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	for _, format := range formats {
		ext, ok := extensions[format]
		if !ok {
			return written, fmt.Errorf("unknown export format %q", format)
		}
		path := filepath.Join(dir, baseName+ext)
		if err := WriteFile(title, e, format, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// WriteFile writes a single export file.
func WriteFile(title string, e document.Export, format, path string) error {
	switch format {
	case FormatMarkdown:
		return writeText(path, Markdown(title, e))
	case FormatHTML:
		html, err := HTML(title, e)
		if err != nil {
			return err
		}
		return writeText(path, html)
	case FormatDocx:
		if err := WriteDocx(title, e, path); err != nil {
			return fmt.Errorf("write docx: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown export format %q", format)
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for format, e := range extensions {
		if e == ext {
			return format, true
		}
	}
	return "", false
}

func writeText(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// timeRange is the "start - end" label shown for every section.
func timeRange(b document.Block) string {
	return b.Start + " - " + b.End
}
