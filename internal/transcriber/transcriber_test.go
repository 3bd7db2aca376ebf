package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/recap/internal/config"
	"github.com/nguyentantai21042004/recap/internal/logger"
	"github.com/nguyentantai21042004/recap/internal/transcript"
)

const sampleSRT = "\ufeff1\n00:00:01,000 --> 00:00:03,500\nlet's start the section\nwith a brief intro\n\n2\n00:00:03,500 --> 00:00:06,000\nto restful services\n\n3\n00:01:00,250 --> 00:01:02,000\n42\n"

func TestParseSRT(t *testing.T) {
	records, err := ParseSRT(sampleSRT)
	require.NoError(t, err)

	fragments, gaps := transcript.Ingest(records)

	assert.Empty(t, gaps)
	assert.Equal(t, []transcript.Fragment{
		{Start: 1, Text: "let's start the section with a brief intro"},
		{Start: 3.5, Text: "to restful services"},
		{Start: 60.25, Text: "42"},
	}, fragments)
}

func TestParseSRTBadTiming(t *testing.T) {
	_, err := ParseSRT("1\nsoon --> later\nhello\n")
	assert.Error(t, err)
}

func TestParseWhisperJSON(t *testing.T) {
	data := []byte(`{"transcription":[
		{"timestamps":{"from":"00:00:00,000","to":"00:00:02,000"},"offsets":{"from":0,"to":2000},"text":" Hello there"},
		{"timestamps":{"from":"00:00:02,000","to":"00:00:05,000"},"offsets":{"from":2500,"to":5000},"text":" General Kenobi"}
	]}`)

	records, err := parseWhisperJSON(data)
	require.NoError(t, err)
	fragments, _ := transcript.Ingest(records)

	assert.Equal(t, []transcript.Fragment{{Start: 0, Text: "Hello there"}, {Start: 2.5, Text: "General Kenobi"}}, fragments)
}

func TestFetchFiles(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "talk.json")
	srtPath := filepath.Join(dir, "talk.srt")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"start":5,"text":"a"},{"bogus":1},{"text":"b"}]`), 0644))
	require.NoError(t, os.WriteFile(srtPath, []byte(sampleSRT), 0644))

	tr := New(config.Default(), &fakeExecutor{}, logger.NewNop())

	records, err := tr.Fetch(context.Background(), jsonPath, "en")
	require.NoError(t, err)
	assert.Len(t, records, 3)

	records, err = tr.Fetch(context.Background(), srtPath, "en")
	require.NoError(t, err)
	assert.Len(t, records, 3)

	_, err = tr.Fetch(context.Background(), filepath.Join(dir, "notes.txt"), "en")
	assert.Error(t, err)

	_, err = tr.Fetch(context.Background(), filepath.Join(dir, "missing.json"), "en")
	assert.Error(t, err)
}

type call struct {
	dir  string
	name string
	args []string
}

type fakeExecutor struct {
	calls []call
	fail  string
}

func (f *fakeExecutor) Execute(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	if name == f.fail {
		return "", errors.New(name + " exploded")
	}
	if name == "whisper-cli" {
		prefix := argAfter(args, "--output-file")
		out := `{"transcription":[{"offsets":{"from":1000},"text":" spoken words"}]}`
		if err := os.WriteFile(prefix+".json", []byte(out), 0644); err != nil {
			return "", err
		}
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	out, err := f.Execute(ctx, name, args...)
	f.calls[len(f.calls)-1].dir = dir
	return out, err
}

func argAfter(args []string, flag string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == flag {
			return args[i+1]
		}
	}
	return ""
}

func TestFetchMedia(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Temp = t.TempDir()
	cfg.Whisper.ModelPath = "models/ggml-base.bin"
	exec := &fakeExecutor{}
	tr := New(cfg, exec, logger.NewNop())

	records, err := tr.Fetch(context.Background(), "/videos/lecture.mp4", "zh-TW")

	require.NoError(t, err)
	fragments, _ := transcript.Ingest(records)
	assert.Equal(t, []transcript.Fragment{{Start: 1, Text: "spoken words"}}, fragments)

	require.Len(t, exec.calls, 2)
	assert.Equal(t, "ffmpeg", exec.calls[0].name)
	assert.Equal(t, "/videos/lecture.mp4", argAfter(exec.calls[0].args, "-i"))
	assert.Equal(t, "zh", argAfter(exec.calls[1].args, "-l"))
	assert.Contains(t, exec.calls[1].args, "-oj")
	assert.Equal(t, filepath.Dir(argAfter(exec.calls[1].args, "-f")), exec.calls[1].dir)

	entries, err := os.ReadDir(cfg.Paths.Temp)
	require.NoError(t, err)
	assert.Empty(t, entries, "work dir must be removed")
}

func TestFetchMediaUsesConfiguredLanguageWithoutHint(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Temp = t.TempDir()
	cfg.Whisper.ModelPath = "models/ggml-base.bin"
	cfg.Whisper.Language = "vi"
	exec := &fakeExecutor{}

	_, err := New(cfg, exec, logger.NewNop()).Fetch(context.Background(), "talk.mp4", "")

	require.NoError(t, err)
	require.Len(t, exec.calls, 2)
	assert.Equal(t, "vi", argAfter(exec.calls[1].args, "-l"))
}

func TestFetchMediaFailures(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.Temp = t.TempDir()
	cfg.Whisper.ModelPath = "models/ggml-base.bin"

	_, err := New(cfg, &fakeExecutor{fail: "ffmpeg"}, logger.NewNop()).Fetch(context.Background(), "a.mkv", "")
	assert.ErrorContains(t, err, "extract audio")

	_, err = New(cfg, &fakeExecutor{fail: "whisper-cli"}, logger.NewNop()).Fetch(context.Background(), "a.mkv", "")
	assert.ErrorContains(t, err, "whisper transcribe")

	cfg.Whisper.ModelPath = ""
	_, err = New(cfg, &fakeExecutor{}, logger.NewNop()).Fetch(context.Background(), "a.mkv", "")
	assert.ErrorContains(t, err, "model_path")
}
