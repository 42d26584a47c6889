/*
Copyright © 2026 The Cosmos Authors
*/
package cmd

import (
	"fmt"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/progress"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/ui"
	"github.com/phukemrunal322-hue/cosmos-sub003/models"
	"github.com/spf13/cobra"
)

type progressResult struct {
	Input    string  `json:"input"`
	Value    float64 `json:"value"`
	Percent  int     `json:"percent"`
	Complete bool    `json:"complete"`
}

// progressCmd normalizes stored progress values
var progressCmd = &cobra.Command{
	Use:   "progress <value>...",
	Short: "Normalize progress values to percentages",
	Long: `Records store progress either as a fraction (0.4) or a percentage (40).
Values up to 1 are fractions, larger values are percentages. The result is
clamped to 0-100 and truncated.`,
	Example: `  cosmos progress 0.4 40 "85%" 1 150`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]progressResult, 0, len(args))
		for _, a := range args {
			v := models.ParseProgress(a)
			results = append(results, progressResult{
				Input:    a,
				Value:    v,
				Percent:  progress.Percentage(v),
				Complete: progress.IsComplete(v),
			})
		}
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), results)
		}
		out := cmd.OutOrStdout()
		for _, r := range results {
			fmt.Fprintf(out, "%-8s %s %3d%%\n", ui.Truncate(r.Input, 8), ui.ProgressBar(r.Percent, 20), r.Percent)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
}
