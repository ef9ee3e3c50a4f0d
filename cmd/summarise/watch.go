package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rob137/summarise-youtube-video/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the inbox directory and summarize every dropped URL file",
	Long: `Monitors the inbox directory for new .txt or .url files. Each file
holds one YouTube URL; the video is summarized with the same pipeline
as a single run and the file is renamed to .done afterwards.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}

		proc, err := buildProcessor(cfg, log)
		if err != nil {
			return err
		}

		for _, dir := range []string{cfg.Paths.Inbox, cfg.Paths.Output} {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}

		w, err := watcher.New(cfg.Paths.Inbox, proc.Process, log, cfg.Watch.MaxConcurrent)
		if err != nil {
			return err
		}
		defer w.Stop()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		errChan := make(chan error, 1)
		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				errChan <- err
			}
		}()

		log.Info(ctx, "========================================")
		log.Info(ctx, "Watching: %s", cfg.Paths.Inbox)
		log.Info(ctx, "Output:   %s", cfg.Paths.Output)
		log.Info(ctx, "Press Ctrl+C to stop")
		log.Info(ctx, "========================================")

		select {
		case <-sigChan:
			log.Info(ctx, "Shutdown signal received")
		case err := <-errChan:
			return err
		}

		cancel()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
