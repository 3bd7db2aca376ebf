package main

import (
	"context"
	"errors"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/recap/internal/watcher"
)

func newWatchCmd(cfgPath *string) *cobra.Command {
	var skipExisting bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Summarize every transcript or media file dropped into the input folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfgPath, true)
			if err != nil {
				return err
			}
			defer a.Close()
			ctx := cmd.Context()
			cfg := a.cfg

			a.log.Info(ctx, "========================================")
			a.log.Info(ctx, "Recap watch folder")
			a.log.Info(ctx, "========================================")
			a.log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
			a.log.Info(ctx, "Summarizer: %s", cfg.Summarizer.Provider)
			a.log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

			if err := ensureDirectories(cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived, cfg.Paths.Temp); err != nil {
				return err
			}

			w, err := watcher.New(watcher.Options{
				InputDir:      cfg.Paths.Input,
				MaxConcurrent: cfg.Performance.MaxConcurrent,
				ScanExisting:  !skipExisting,
			}, a.proc.Process, a.log)
			if err != nil {
				return err
			}
			defer w.Stop()

			a.log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			a.log.Info(ctx, "Output: %s (%v)", cfg.Paths.Output, cfg.Export.Formats)
			a.log.Info(ctx, "Press Ctrl+C to stop")

			err = w.Start(ctx)
			a.log.Info(ctx, "Recap watch stopped")
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "ignore files already in the input folder")
	return cmd
}
