/*
Copyright © 2026 The Cosmos Authors
*/
package cmd

import (
	"fmt"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/logger"
	"github.com/spf13/cobra"
)

// crashesCmd lists crash logs written by earlier runs
var crashesCmd = &cobra.Command{
	Use:   "crashes",
	Short: "List crash logs from earlier runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logs, err := logger.ListCrashLogs()
		if err != nil {
			return fmt.Errorf("list crash logs: %w", err)
		}
		if isJSON() {
			if logs == nil {
				logs = []string{}
			}
			return printJSON(cmd.OutOrStdout(), logs)
		}
		if len(logs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No crash logs found.")
			return nil
		}
		for _, l := range logs {
			fmt.Fprintln(cmd.OutOrStdout(), l)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crashesCmd)
}
