package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/recap/internal/config"
	"github.com/nguyentantai21042004/recap/internal/logger"
	"github.com/nguyentantai21042004/recap/internal/processor"
	"github.com/nguyentantai21042004/recap/internal/store"
	"github.com/nguyentantai21042004/recap/internal/summarizer"
	"github.com/nguyentantai21042004/recap/internal/transcriber"
	"github.com/nguyentantai21042004/recap/pkg/executor"
)

const defaultConfigFile = "config.yaml"

// app holds the wired dependencies shared by every command.
type app struct {
	cfg   *config.Config
	log   logger.Logger
	store *store.Store
	proc  processor.Processor
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.Load(defaultConfigFile)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config: %w", err)
	}
	return config.Default(), nil
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
		Stdout: cfg.Logging.StdoutEnabled(),
	})
}

// newApp wires config, logging, storage and the processor. withSummarizer
// is false for commands that only read stored documents.
func newApp(cfgPath string, withSummarizer bool) (*app, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg)

	st, err := store.Open(cfg.Paths.Database)
	if err != nil {
		return nil, err
	}

	var sum summarizer.Summarizer
	if withSummarizer {
		sum, err = summarizer.New(cfg, log)
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("create summarizer: %w", err)
		}
	}

	tr := transcriber.New(cfg, executor.New(), log)
	return &app{
		cfg:   cfg,
		log:   log,
		store: st,
		proc:  processor.New(cfg, tr, sum, st, log),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
