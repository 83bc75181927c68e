package main

import (
	"github.com/spf13/cobra"
)

var flagMaxClips int

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Continue processing from where the last run stopped",
	Long: `auto picks up from durable state: clips from the scraped catalog that have
not been processed yet, or the next sequential ID after the last processed
clip when no catalog exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		results := app.pipe.Auto(ctx, flagMaxClips)
		app.report(ctx, "processed", results)
		return nil
	},
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Refresh the clip catalog from the portal and process new clips",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := buildApp()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		results, err := app.pipe.Scrape(ctx, flagMaxClips)
		if err != nil {
			return err
		}
		app.report(ctx, "processed", results)
		return nil
	},
}

func init() {
	autoCmd.Flags().IntVar(&flagMaxClips, "max", 0, "stop after this many clips (0 = no limit)")
	scrapeCmd.Flags().IntVar(&flagMaxClips, "max", 0, "stop after this many clips (0 = no limit)")
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(scrapeCmd)
}
