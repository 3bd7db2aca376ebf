// Package timecode converts between HH:MM:SS strings and whole seconds.
package timecode

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrFormat is matched by every FormatError.
var ErrFormat = errors.New("invalid timecode")

// FormatError reports a string that is not a usable timecode.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid timecode %q: want HH:MM:SS", e.Input)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

var (
	reStrict   = regexp.MustCompile(`^(\d+):(\d+):(\d+)$`)
	reFlexible = regexp.MustCompile(`^(?:(\d+):)?(\d+):(\d+)(?:[.,](\d+))?$`)
)

// Parse reads a strict HH:MM:SS timecode into seconds.
// Components are plain integers combined as h*3600 + m*60 + s, so minute or
// second fields of 60 and above overflow into the next unit instead of failing.
func Parse(s string) (int, error) {
	m := reStrict.FindStringSubmatch(s)
	if m == nil {
		return 0, &FormatError{Input: s}
	}
	return combine(s, m[1], m[2], m[3])
}

// MaxSeconds is the largest offset Format renders exactly; larger values,
// including +Inf, saturate to it.
const MaxSeconds = math.MaxInt32

// InRange reports whether seconds is a finite offset in [0, MaxSeconds].
func InRange(seconds float64) bool {
	return !math.IsNaN(seconds) && seconds >= 0 && seconds <= MaxSeconds
}

// ParseFlexible accepts the timecode shapes seen in transcripts and model
// output: HH:MM:SS, MM:SS, and either with a ",mmm" or ".mmm" fraction.
func ParseFlexible(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	m := reFlexible.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, &FormatError{Input: s}
	}
	hours := m[1]
	if hours == "" {
		hours = "0"
	}
	whole, err := combine(s, hours, m[2], m[3])
	if err != nil {
		return 0, err
	}
	if m[4] == "" {
		return float64(whole), nil
	}
	frac, err := strconv.ParseFloat("0."+m[4], 64)
	if err != nil {
		return 0, &FormatError{Input: s}
	}
	return float64(whole) + frac, nil
}

// Format renders seconds as zero-padded HH:MM:SS. Fractions are floored,
// negative or NaN input renders as 00:00:00 and values past MaxSeconds
// saturate. Hours grow past two digits.
func Format(seconds float64) string {
	total := int64(Offset(seconds))
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

// Offset returns the whole-second offset used for time-coded links, clamped
// the same way Format clamps.
func Offset(seconds float64) int {
	switch {
	case math.IsNaN(seconds) || seconds < 0:
		return 0
	case seconds > MaxSeconds:
		return MaxSeconds
	}
	return int(math.Floor(seconds))
}

func combine(input, h, m, s string) (int, error) {
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, &FormatError{Input: input}
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0, &FormatError{Input: input}
	}
	secs, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FormatError{Input: input}
	}
	if minutes > (math.MaxInt-secs)/60 || hours > (math.MaxInt-minutes*60-secs)/3600 {
		return 0, &FormatError{Input: input}
	}
	return hours*3600 + minutes*60 + secs, nil
}
