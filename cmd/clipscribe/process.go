package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process <clipID> [endClipID]",
	Short: "Process one clip or an inclusive ID range",
	Args:  cobra.RangeArgs(1, 2),
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
			err := app.pipe.ProcessClip(ctx, startID, true)
			if err != nil {
				app.log.Error(ctx, "Clip %d failed: %v", startID, err)
			}
			return nil
		}

		results := app.pipe.ProcessRange(ctx, startID, endID, false)
		app.report(ctx, "processed", results)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func parseIDRange(args []string) (int, int, error) {
	startID, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clip ID %q", args[0])
	}
	endID := startID
	if len(args) == 2 {
		endID, err = strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid clip ID %q", args[1])
		}
	}
	if endID < startID {
		return 0, 0, fmt.Errorf("end clip ID %d is before start clip ID %d", endID, startID)
	}
	return startID, endID, nil
}
