package summarizer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/recap/internal/document"
	"github.com/nguyentantai21042004/recap/internal/timecode"
)

var (
	errNoSections = errors.New(`response has no "sections" key`)
	errNoSummary  = errors.New(`response has no "summary" key`)
)

// sectionPayload accepts both the short field names and the prefixed ones
// models tend to echo back from the prompt.
type sectionPayload struct {
	Title          string `json:"title"`
	SummaryTitle   string `json:"summary_title"`
	Start          any    `json:"start"`
	StartTime      any    `json:"start_time"`
	End            any    `json:"end"`
	EndTime        any    `json:"end_time"`
	Summary        string `json:"summary"`
	SummaryContent string `json:"summary_content"`
}

type segmentPayload struct {
	Sections *[]sectionPayload `json:"sections"`
}

type refinePayload struct {
	Summary        *string `json:"summary"`
	SummaryContent *string `json:"summary_content"`
}

// extractJSON strips code fences and any prose around the outermost object.
func extractJSON(reply string) string {
	s := strings.TrimSpace(reply)
	if strings.HasPrefix(s, "```") {
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return strings.TrimSpace(s)
}

func parseSections(reply string) ([]document.Section, error) {
	var p segmentPayload
	if err := json.Unmarshal([]byte(extractJSON(reply)), &p); err != nil {
		return nil, fmt.Errorf("decode sections: %w", err)
	}
	if p.Sections == nil {
		return nil, errNoSections
	}
	if len(*p.Sections) == 0 {
		return nil, errors.New("response declares no sections")
	}

	sections := make([]document.Section, 0, len(*p.Sections))
	for i, raw := range *p.Sections {
		start, err := seconds(firstSet(raw.Start, raw.StartTime))
		if err != nil {
			return nil, fmt.Errorf("section %d start: %w", i, err)
		}
		end, err := seconds(firstSet(raw.End, raw.EndTime))
		if err != nil {
			return nil, fmt.Errorf("section %d end: %w", i, err)
		}
		title := firstNonEmpty(raw.SummaryTitle, raw.Title)
		if title == "" {
			title = fmt.Sprintf("Section %d", i+1)
		}
		sections = append(sections, document.Section{
			Title:   strings.TrimSpace(title),
			Start:   start,
			End:     end,
			Summary: strings.TrimSpace(firstNonEmpty(raw.SummaryContent, raw.Summary)),
		})
	}
	return sections, nil
}

func parseSummary(reply string) (string, error) {
	var p refinePayload
	if err := json.Unmarshal([]byte(extractJSON(reply)), &p); err != nil {
		return "", fmt.Errorf("decode summary: %w", err)
	}
	switch {
	case p.Summary != nil && strings.TrimSpace(*p.Summary) != "":
		return strings.TrimSpace(*p.Summary), nil
	case p.SummaryContent != nil && strings.TrimSpace(*p.SummaryContent) != "":
		return strings.TrimSpace(*p.SummaryContent), nil
	}
	return "", errNoSummary
}

func seconds(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, errors.New("missing")
	case float64:
		if !timecode.InRange(x) {
			return 0, fmt.Errorf("offset %v out of range", x)
		}
		return x, nil
	case string:
		f, err := timecode.ParseFlexible(x)
		if err != nil {
			return 0, err
		}
		if !timecode.InRange(f) {
			return 0, fmt.Errorf("offset %s out of range", x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported value %v", v)
	}
}

func firstSet(vals ...any) any {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
