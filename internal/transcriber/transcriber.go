package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/recap/internal/transcript"
)

var mediaExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".mkv": true, ".webm": true, ".m4v": true, ".flv": true,
	".mp3": true, ".wav": true, ".m4a": true, ".aac": true, ".ogg": true, ".flac": true,
}

// IsTranscriptFile reports whether path is a transcript the file reader handles.
func IsTranscriptFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".srt":
		return true
	}
	return false
}

// IsMediaFile reports whether path needs speech recognition.
func IsMediaFile(path string) bool {
	return mediaExtensions[strings.ToLower(filepath.Ext(path))]
}

// Fetch dispatches on the source's extension.
func (t *implTranscriber) Fetch(ctx context.Context, source, languageHint string) ([]transcript.RawRecord, error) {
	switch {
	case IsTranscriptFile(source):
		return t.readFile(ctx, source)
	case IsMediaFile(source):
		return t.transcribeMedia(ctx, source, languageHint)
	}
	return nil, fmt.Errorf("unsupported source %q: want .json, .srt or a media file", source)
}

func (t *implTranscriber) readFile(ctx context.Context, path string) ([]transcript.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var records []transcript.RawRecord
	if strings.EqualFold(filepath.Ext(path), ".srt") {
		records, err = ParseSRT(string(data))
	} else {
		records, err = transcript.Decode(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	t.logger.Info(ctx, "Read %d transcript records from %s", len(records), path)
	return records, nil
}
