package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nguyentantai21042004/recap/internal/transcript"
)

func frags(starts ...float64) []transcript.Fragment {
	out := make([]transcript.Fragment, 0, len(starts))
	for _, s := range starts {
		out = append(out, transcript.Fragment{Start: s, Text: "t"})
	}
	return out
}

func TestSelectHalfOpen(t *testing.T) {
	fragments := frags(0, 10, 20, 30)

	first := Select(fragments, 0, 20)
	second := Select(fragments, 20, 40)

	assert.Equal(t, frags(0, 10), first)
	assert.Equal(t, frags(20, 30), second)
}

func TestComputeSlice(t *testing.T) {
	fragments := []transcript.Fragment{
		{Start: 0, Text: "intro"},
		{Start: 10, Text: "rest"},
		{Start: 20, Text: "crud"},
		{Start: 30, Text: "endpoints"},
	}

	tests := []struct {
		name       string
		start, end float64
		want       string
	}{
		{"first half", 0, 20, "(00:00:00) intro\n(00:00:10) rest"},
		{"second half", 20, 40, "(00:00:20) crud\n(00:00:30) endpoints"},
		{"beyond transcript", 100, 110, "No transcript entries found for this section (00:01:40 to 00:01:50)."},
		{"inverted", 30, 10, "No transcript entries found for this section (00:00:30 to 00:00:10)."},
		{"zero width", 10, 10, "No transcript entries found for this section (00:00:10 to 00:00:10)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeSlice(fragments, tt.start, tt.end))
		})
	}
}

func TestComputeSliceKeepsInputOrder(t *testing.T) {
	fragments := []transcript.Fragment{
		{Start: 15, Text: "b"},
		{Start: 5, Text: "a"},
		{Start: 15, Text: "b"},
		{Start: 50, Text: "outside"},
	}

	got := ComputeSlice(fragments, 0, 20)

	assert.Equal(t, "(00:00:15) b\n(00:00:05) a\n(00:00:15) b", got)
}

func TestOverlappingSectionsShareFragments(t *testing.T) {
	fragments := frags(5, 15, 25)

	assert.Equal(t, frags(5, 15), Select(fragments, 0, 20))
	assert.Equal(t, frags(15, 25), Select(fragments, 10, 30))
}

func TestComputeSliceIdempotent(t *testing.T) {
	fragments := frags(1, 2, 3, 4)

	a := ComputeSlice(fragments, 0, 3)
	b := ComputeSlice(fragments, 0, 3)

	assert.Equal(t, []byte(a), []byte(b))
}
