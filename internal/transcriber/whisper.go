package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/recap/internal/transcript"
)

// whisperOutput is the part of whisper.cpp's -oj output we read.
type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// transcribeMedia extracts 16kHz mono audio and runs whisper.cpp on it.
func (t *implTranscriber) transcribeMedia(ctx context.Context, mediaPath, languageHint string) ([]transcript.RawRecord, error) {
	if err := os.MkdirAll(t.tempDir, 0755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	workDir, err := os.MkdirTemp(t.tempDir, "whisper-*")
	if err != nil {
		return nil, fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	audioPath, err := t.extractAudio(ctx, mediaPath, workDir)
	if err != nil {
		return nil, fmt.Errorf("extract audio: %w", err)
	}

	jsonPath, err := t.runWhisper(ctx, audioPath, languageHint)
	if err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}
	return parseWhisperJSON(data)
}

// extractAudio converts the media file to the 16kHz mono PCM WAV whisper expects.
func (t *implTranscriber) extractAudio(ctx context.Context, mediaPath, workDir string) (string, error) {
	audioPath := filepath.Join(workDir, "audio.wav")

	t.logger.Info(ctx, "Extracting audio: %s", mediaPath)

	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}
	if _, err := t.exec.Execute(ctx, t.ffmpeg.BinaryPath, args...); err != nil {
		return "", err
	}
	return audioPath, nil
}

// runWhisper writes <audio>.json next to the audio file and returns its path.
func (t *implTranscriber) runWhisper(ctx context.Context, audioPath, languageHint string) (string, error) {
	if t.whisper.ModelPath == "" {
		return "", fmt.Errorf("whisper.model_path is not configured")
	}
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	language := t.whisper.Language
	if languageHint != "" {
		language = whisperLanguage(languageHint)
	}

	t.logger.Info(ctx, "Starting transcription with %d threads (language %s): %s",
		t.whisper.Threads, language, audioPath)

	args := []string{
		"-m", t.whisper.ModelPath,
		"-f", audioPath,
		"-oj",
		"-l", language,
		"-t", strconv.Itoa(t.whisper.Threads),
		"-ml", "0",
		"-mc", "0",
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if t.whisper.Prompt != "" {
		args = append(args, "--prompt", t.whisper.Prompt)
	}

	if _, err := t.exec.ExecuteInDir(ctx, filepath.Dir(audioPath), t.whisper.BinaryPath, args...); err != nil {
		return "", err
	}
	return outputPrefix + ".json", nil
}

// whisperLanguage maps summary language codes like "zh-TW" to whisper's
// two-letter codes.
func whisperLanguage(hint string) string {
	code, _, _ := strings.Cut(strings.ToLower(hint), "-")
	return code
}

func parseWhisperJSON(data []byte) ([]transcript.RawRecord, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode whisper output: %w", err)
	}
	records := make([]transcript.RawRecord, 0, len(out.Transcription))
	for _, seg := range out.Transcription {
		records = append(records, transcript.NewRecord(float64(seg.Offsets.From)/1000, strings.TrimSpace(seg.Text)))
	}
	return records, nil
}
