package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/opencouncil/clipscribe/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the inbox directory and transcribe dropped audio files",
	Long: `watch monitors the configured inbox directory. Any audio file dropped in is
transcribed and summarized into <output>/local/<name>/, without touching the
portal or the clip state. Stop with Ctrl+C; in-flight files finish first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}

		if err := os.MkdirAll(app.cfg.Paths.Inbox, 0o755); err != nil {
			return err
		}

		w, err := watcher.New(app.cfg.Paths.Inbox, app.pipe.IngestLocal, app.log, app.cfg.Performance.MaxConcurrent)
		if err != nil {
			return err
		}
		defer w.Stop()

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		done := make(chan error, 1)
		go func() {
			done <- w.Start(ctx)
		}()

		app.log.Info(ctx, "Watching %s (output: %s). Press Ctrl+C to stop", app.cfg.Paths.Inbox, app.cfg.Paths.Output)

		select {
		case <-sigChan:
			app.log.Info(ctx, "Shutdown signal received")
			cancel()
			// Start drains in-flight work before returning.
			<-done
			return nil
		case err := <-done:
			if err != nil && err != context.Canceled {
				return err
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
