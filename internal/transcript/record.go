package transcript

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/recap/internal/timecode"
)

// RawRecord is one provider record after structural validation.
// Start and Text are nil when the provider omitted them.
type RawRecord struct {
	Start  *float64
	Text   *string
	reason string
}

// NewRecord builds a well-formed record, used by transcribers that produce
// typed output themselves.
func NewRecord(start float64, text string) RawRecord {
	return RawRecord{Start: &start, Text: &text}
}

// Valid reports whether the record can become a Fragment.
func (r RawRecord) Valid() bool {
	return r.reason == ""
}

// Reason explains why an invalid record will be dropped.
func (r RawRecord) Reason() string {
	return r.reason
}

// UnmarshalJSON accepts any JSON value. Values that are not usable records are
// kept as invalid records so a single bad entry never fails the whole decode.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*r = FromValue(v)
	return nil
}

// FromValue validates a loosely typed value such as one element of a decoded
// JSON array.
func FromValue(v any) RawRecord {
	m, ok := v.(map[string]any)
	if !ok {
		return invalid("record is %T, not an object", v)
	}

	startVal, hasStart := m["start"]
	textVal, hasText := m["text"]
	if !hasStart && !hasText {
		return invalid("record has neither start nor text")
	}

	var rec RawRecord
	if hasStart && startVal != nil {
		start, err := toSeconds(startVal)
		if err != nil {
			return invalid("bad start: %v", err)
		}
		rec.Start = &start
	}
	if hasText && textVal != nil {
		text, ok := textVal.(string)
		if !ok {
			return invalid("text is %T, not a string", textVal)
		}
		rec.Text = &text
	}
	return rec
}

func invalid(format string, args ...any) RawRecord {
	return RawRecord{reason: fmt.Sprintf(format, args...)}
}

func toSeconds(v any) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		parsed, err := x.Float64()
		if err != nil {
			return 0, err
		}
		f = parsed
	case string:
		s := strings.TrimSpace(x)
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			f = parsed
			break
		}
		parsed, err := timecode.ParseFlexible(s)
		if err != nil {
			return 0, err
		}
		f = parsed
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	if !timecode.InRange(f) {
		return 0, fmt.Errorf("start %v out of range", f)
	}
	return f, nil
}
