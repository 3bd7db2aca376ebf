package transcriber

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/recap/internal/timecode"
	"github.com/nguyentantai21042004/recap/internal/transcript"
)

var (
	reCueTiming = regexp.MustCompile(`^(\S+)\s*-->\s*(\S+)`)
	reCueIndex  = regexp.MustCompile(`^\d+$`)
)

// ParseSRT turns SubRip cues into records: the cue start becomes the record
// start and the cue lines are joined with spaces.
func ParseSRT(content string) ([]transcript.RawRecord, error) {
	var (
		records []transcript.RawRecord
		start   float64
		lines   []string
		inCue   bool
	)

	flush := func() {
		if inCue {
			records = append(records, transcript.NewRecord(start, strings.Join(lines, " ")))
		}
		inCue = false
		lines = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(strings.TrimPrefix(content, "\ufeff")))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			flush()
		case !inCue && reCueIndex.MatchString(line):
		case reCueTiming.MatchString(line):
			flush()
			m := reCueTiming.FindStringSubmatch(line)
			s, err := timecode.ParseFlexible(m[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			start = s
			inCue = true
		case inCue:
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan srt: %w", err)
	}
	flush()
	return records, nil
}
