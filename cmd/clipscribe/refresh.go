package main

import (
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh <clipID> [endClipID]",
	Short: "Regenerate summaries for already-processed clips",
	Long: `refresh re-fetches minutes documents and regenerates the summary and HTML
page for clips that already have a transcript. Audio is never re-downloaded
and transcripts are never redone.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		startID, endID, err := parseIDRange(args)
		if err != nil {
			return err
		}

		app, err := buildApp()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if startID == endID {
			if err := app.pipe.RefreshSummary(ctx, startID); err != nil {
				app.log.Error(ctx, "Refresh of clip %d failed: %v", startID, err)
				return nil
			}
			if _, err := app.pipe.GenerateIndex(ctx); err != nil {
				app.log.Warn(ctx, "Failed to regenerate index: %v", err)
			}
			return nil
		}

		results := app.pipe.RefreshRange(ctx, startID, endID)
		app.report(ctx, "refreshed", results)
		return nil
	},
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the search index from clip metadata on disk",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		path, err := app.pipe.GenerateIndex(ctx)
		if err != nil {
			return err
		}
		app.log.Info(ctx, "Index written: %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(indexCmd)
}
