// Package videoref turns user-supplied video URLs into link bases for
// time-coded section links.
package videoref

import (
	"regexp"
	"strings"
)

var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11}).*`),
	regexp.MustCompile(`(?:embed/)([0-9A-Za-z_-]{11})`),
	regexp.MustCompile(`(?:shorts/)([0-9A-Za-z_-]{11})`),
}

var bareID = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)

// ExtractVideoID returns the 11 character YouTube id in url, or "".
func ExtractVideoID(url string) string {
	if bareID.MatchString(url) {
		return url
	}
	if !strings.Contains(url, "youtu") {
		return ""
	}
	for _, re := range idPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// LinkBase returns the prefix a section's start offset in seconds is
// appended to. YouTube references become a watch URL ending in "&t=";
// anything else is used verbatim.
func LinkBase(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if id := ExtractVideoID(ref); id != "" {
		return "https://www.youtube.com/watch?v=" + id + "&t="
	}
	return ref
}
