package videoref

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://vimeo.com/123456789", ""},
		{"https://www.youtube.com/watch?v=short", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractVideoID(tt.url), tt.url)
	}
}

func TestLinkBase(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=", LinkBase("https://youtu.be/dQw4w9WgXcQ"))
	assert.Equal(t, "https://example.com/talk.mp4#t=", LinkBase("https://example.com/talk.mp4#t="))
	assert.Equal(t, "", LinkBase("  "))
}
