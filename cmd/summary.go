/*
Copyright © 2026 The Cosmos Authors
*/
package cmd

import (
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/summary"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/ui"
	"github.com/spf13/cobra"
)

type summaryOutput struct {
	Tasks    summary.TaskSummary    `json:"tasks"`
	Projects summary.ProjectSummary `json:"projects"`
}

// summaryCmd prints dashboard counters
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Count tasks by status and projects by completion",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		set, err := loadRecords(ctx)
		if err != nil {
			return recordsError(err)
		}
		r := newResolver(ctx)

		out := summaryOutput{
			Tasks:    summary.Tasks(set.Tasks, r, now()),
			Projects: summary.Projects(set.Projects),
		}
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), out)
		}
		ui.RenderPageHeader(cmd.OutOrStdout(), "Summary", now().Format("Monday, 02 January 2006"))
		ui.RenderSummary(cmd.OutOrStdout(), out.Tasks, out.Projects)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
