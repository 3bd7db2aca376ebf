package transcriber

import (
	"github.com/nguyentantai21042004/recap/internal/config"
	"github.com/nguyentantai21042004/recap/internal/logger"
	"github.com/nguyentantai21042004/recap/pkg/executor"
)

type implTranscriber struct {
	whisper config.WhisperConfig
	ffmpeg  config.FFmpegConfig
	tempDir string
	exec    executor.Executor
	logger  logger.Logger
}

// New creates a Transcriber that reads transcript files directly and runs
// media files through ffmpeg and whisper.cpp.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		whisper: cfg.Whisper,
		ffmpeg:  cfg.FFmpeg,
		tempDir: cfg.Paths.Temp,
		exec:    exec,
		logger:  log,
	}
}
