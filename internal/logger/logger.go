package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type implLogger struct {
	logger *logrus.Logger
}

// Options selects level, output format and an optional rotated log file.
type Options struct {
	Level  string
	Format string
	File   string
	Stdout bool
}

// New creates a text logger on stdout at the given level.
func New(level string) Logger {
	return NewWithOptions(Options{Level: level, Stdout: true})
}

// NewWithOptions creates a Logger. Unknown levels fall back to info. When
// File is set, output is rotated there and also copied to stdout if Stdout
// is true.
func NewWithOptions(opts Options) Logger {
	l := logrus.New()
	switch strings.ToLower(opts.Format) {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l.SetLevel(logrus.InfoLevel)
	if lvl, err := logrus.ParseLevel(strings.ToLower(opts.Level)); err == nil {
		l.SetLevel(lvl)
	}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    20, // megabytes
			MaxBackups: 3,
			MaxAge:     30,
		}
		if opts.Stdout {
			out = io.MultiWriter(os.Stdout, rotator)
		} else {
			out = rotator
		}
	}
	l.SetOutput(out)

	return &implLogger{logger: l}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &implLogger{logger: l}
}

func (l *implLogger) shouldLog(level string) bool {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return true
	}
	return l.logger.IsLevelEnabled(lvl)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logger.WithContext(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logger.WithContext(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logger.WithContext(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logger.WithContext(ctx).Errorf(msg, args...)
}
