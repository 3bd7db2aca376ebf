package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	root := &cobra.Command{
		Use:   "recap",
		Short: "Recap - sectioned summaries of long transcripts",
		Long: `Recap turns a time-stamped transcript (JSON, SRT, or a media file run through
whisper.cpp) into a sectioned summary with time-coded links, and lets you
rewrite any section's summary in another style.

Key commands:
  summarize <source>                     Build a new document
  refine <doc-id> <section-id> <style>   Rewrite one section (or "all")
  export <doc-id>                        Write markdown, html or docx
  show [doc-id]                          List documents or print one
  watch                                  Process files dropped into the input folder

Env overrides: RECAP_GEMINI_API_KEYS, RECAP_OPENAI_API_KEY,
               RECAP_OPENAI_BASE_URL, RECAP_LOG_LEVEL`,
		Example: `  recap summarize lecture.json --video https://youtu.be/dQw4w9WgXcQ
  recap summarize talk.mp4 --lang vi --format markdown --format docx
  recap refine 5f0c... section_2 fun
  recap export 5f0c... --out notes.html
  recap watch`,
		SilenceUsage: true,
	}

	root.Version = version
	root.SetVersionTemplate("Recap v{{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true

	cfgPath := root.PersistentFlags().StringP("config", "c", "", "Path to config file (YAML). Defaults to ./config.yaml when present")

	root.AddCommand(newSummarizeCmd(cfgPath))
	root.AddCommand(newRefineCmd(cfgPath))
	root.AddCommand(newExportCmd(cfgPath))
	root.AddCommand(newShowCmd(cfgPath))
	root.AddCommand(newWatchCmd(cfgPath))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return root.ExecuteContext(ctx)
}
