package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagOutputDir string
	flagForce     bool
	flagNoAudio   bool
)

var rootCmd = &cobra.Command{
	Use:   "clipscribe",
	Short: "Archive, transcribe and summarize Granicus meeting clips.",
	Long: `clipscribe downloads meeting audio from a Granicus portal, transcribes it
with Whisper (compressing and splitting files that exceed the API upload
limit), fetches agenda and minutes documents, and generates a structured
summary per meeting. Every stage is resumable: rerunning skips work whose
output already exists on disk.`,
	SilenceUsage: true,
}

// Execute runs the root command. Configuration and wiring errors exit
// non-zero; per-clip failures inside a run are reported but do not.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "config.yaml", "path to the yaml config file")
	rootCmd.PersistentFlags().StringVar(&flagOutputDir, "output-dir", "", "override the configured output directory")
	rootCmd.PersistentFlags().BoolVar(&flagForce, "force", false, "reprocess clips even when outputs already exist")
	rootCmd.PersistentFlags().BoolVar(&flagNoAudio, "no-audio", false, "delete downloaded audio after transcription")
}
