package timecode

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"zero", "00:00:00", 0, false},
		{"canonical", "01:02:03", 3723, false},
		{"long hours", "123:00:01", 442801, false},
		{"single digit fields", "1:2:3", 3723, false},
		{"minute overflow", "00:75:00", 4500, false},
		{"second overflow", "00:00:90", 90, false},
		{"empty", "", 0, true},
		{"two fields", "01:02", 0, true},
		{"negative", "-1:00:00", 0, true},
		{"fraction", "00:00:01.5", 0, true},
		{"padding", " 00:00:01", 0, true},
		{"letters", "aa:bb:cc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrFormat))
				var fe *FormatError
				require.True(t, errors.As(err, &fe))
				assert.Equal(t, tt.input, fe.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00:00"},
		{59.99, "00:00:59"},
		{100, "00:01:40"},
		{3723, "01:02:03"},
		{360000, "100:00:00"},
		{-5, "00:00:00"},
		{math.NaN(), "00:00:00"},
		{1e19, "596523:14:07"},
		{math.Inf(1), "596523:14:07"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in), "Format(%v)", tt.in)
	}
}

func TestRoundTrip(t *testing.T) {
	for s := 0; s < 200000; s += 37 {
		got, err := Parse(Format(float64(s)))
		require.NoError(t, err)
		if got != s {
			t.Fatalf("Parse(Format(%d)) = %d", s, got)
		}
	}
}

func TestParseFlexible(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"00:01:40", 100, false},
		{"01:40", 100, false},
		{"00:00:01,500", 1.5, false},
		{"00:00:02.25", 2.25, false},
		{" 00:00:03 ", 3, false},
		{"3", 0, true},
		{"00:00:xx", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseFlexible(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrFormat, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.InDelta(t, tt.want, got, 1e-9, tt.input)
	}
}

func TestOffsetSaturates(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{61.9, 61},
		{-3, 0},
		{math.NaN(), 0},
		{1e19, MaxSeconds},
		{math.Inf(1), MaxSeconds},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Offset(tt.in), "Offset(%v)", tt.in)
	}

	assert.True(t, InRange(MaxSeconds))
	assert.False(t, InRange(MaxSeconds+1))
	assert.False(t, InRange(math.Inf(1)))
	assert.False(t, InRange(-1))
}
