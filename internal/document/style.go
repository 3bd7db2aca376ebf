package document

import (
	"fmt"
	"strings"
)

// Style names the register a section summary was last regenerated in.
type Style string

const (
	StyleNone     Style = "none"
	StyleDetailed Style = "detailed"
	StyleBrief    Style = "brief"
	StyleConcise  Style = "concise"
	StyleFun      Style = "fun"
)

// ParseStyle accepts a requestable style name. "entertaining" is read as fun.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "detailed":
		return StyleDetailed, nil
	case "brief":
		return StyleBrief, nil
	case "concise":
		return StyleConcise, nil
	case "fun", "entertaining":
		return StyleFun, nil
	}
	return StyleNone, fmt.Errorf("%w: %q", ErrInvalidStyle, s)
}

// Requestable reports whether a refinement may ask for this style.
func (s Style) Requestable() bool {
	switch s {
	case StyleDetailed, StyleBrief, StyleConcise, StyleFun:
		return true
	}
	return false
}

func (s Style) String() string {
	if s == "" {
		return string(StyleNone)
	}
	return string(s)
}
