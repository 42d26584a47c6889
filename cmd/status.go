/*
Copyright © 2026 The Cosmos Authors
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/config"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/dominant"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/progress"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/summary"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/ui"
	"github.com/spf13/cobra"
)

// statusCmd groups the status taxonomy commands
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Inspect and manage status labels",
	Long: `Every task status label, whatever its spelling, maps onto one of eight
canonical statuses. These commands show that mapping, manage the labels offered
to users, and remember custom labels per task occurrence.`,
}

// canonicalization result for one label
type canonicalResult struct {
	Label      string                 `json:"label"`
	Normalized string                 `json:"normalized"`
	Status     status.CanonicalStatus `json:"status"`
	Title      string                 `json:"title"`
	Known      bool                   `json:"known"`
}

var statusCanonicalizeCmd = &cobra.Command{
	Use:   "canonicalize <label>...",
	Short: "Show the canonical status for free-form labels",
	Example: `  cosmos status canonicalize "To-Do" "waiting on client" done
  cosmos status canonicalize --json "Hold by Client"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := make([]canonicalResult, 0, len(args))
		for _, label := range args {
			s := status.Canonicalize(label)
			results = append(results, canonicalResult{
				Label:      label,
				Normalized: status.Normalize(label),
				Status:     s,
				Title:      s.Title(),
				Known:      status.IsKnown(label),
			})
		}
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), results)
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint("Label"), bold.Sprint("Status"), bold.Sprint("Key"))
		for _, r := range results {
			title := r.Title
			if !r.Known {
				title += faint.Sprint(" (fallback)")
			}
			tbl.AddRow(r.Label, title, string(r.Status))
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
		return nil
	},
}

// one entry of the status menu
type statusOption struct {
	Label   string                 `json:"label"`
	Status  status.CanonicalStatus `json:"status"`
	Default bool                   `json:"default"`
}

var statusOptionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the status labels offered to users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := newResolver(cmd.Context()).Catalog()
		opts := make([]statusOption, 0, catalog.Len())
		for _, label := range catalog.Labels() {
			s := status.Canonicalize(label)
			opts = append(opts, statusOption{Label: label, Status: s, Default: catalog.DefaultLabel(s) == label})
		}
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), opts)
		}

		bold := color.New(color.Bold)
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint("#"), bold.Sprint("Label"), bold.Sprint("Status"), "")
		for i, o := range opts {
			mark := ""
			if o.Default {
				mark = "default"
			}
			tbl.AddRow(fmt.Sprint(i+1), o.Label, o.Status.Title(), mark)
		}
		tbl.RightAlign(0)
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
		return nil
	},
}

var statusSetOptionsCmd = &cobra.Command{
	Use:   "set-options <label>...",
	Short: "Replace the status labels offered to users",
	Long: `Replace status.options in the config file with the given labels, in menu
order. Other settings in the file are kept. A running "cosmos watch" picks the
change up without a restart.`,
	Example: `  cosmos status set-options "To Do" "In Progress" "Blocked" "Done"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath()
		if err := config.SaveStatusOptions(path, args); err != nil {
			return configError(fmt.Errorf("save status options to %s: %w", path, err))
		}
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]any{"path": path, "options": args})
		}
		cmd.Printf("Saved %d status options to %s\n", len(args), path)
		return nil
	},
}

var statusKeyCmd = &cobra.Command{
	Use:     "key <title> <due-date>",
	Short:   "Print the occurrence key custom labels are stored under",
	Example: `  cosmos status key "Weekly report" 2024-03-05`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		due, err := parseDay(args[1])
		if err != nil {
			return err
		}
		key := status.RawStatusKey(args[0], due, dayLocation())
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]string{"key": key})
		}
		fmt.Fprintln(cmd.OutOrStdout(), key)
		return nil
	},
}

var statusLabelCmd = &cobra.Command{
	Use:   "label <title> <due-date> [label]",
	Short: "Remember a custom status label for one task occurrence",
	Long: `Remember the label an administrator picked for one occurrence of a task.
The label is shown for that occurrence whenever its record carries no label of
its own. Without a label, the remembered one is printed.`,
	Example: `  cosmos status label "Weekly report" 2024-03-05 "Blocked by legal"
  cosmos status label "Weekly report" 2024-03-05 --forget`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		due, err := parseDay(args[1])
		if err != nil {
			return err
		}
		labels := openLabelStore()
		forget, _ := cmd.Flags().GetBool("forget")

		switch {
		case forget:
			if err := labels.Delete(title, due); err != nil {
				return fmt.Errorf("forget label: %w", err)
			}
			cmd.Printf("Forgot label for %q on %s\n", title, due.Format(dateLayout))
			return nil
		case len(args) == 3:
			label := strings.TrimSpace(args[2])
			if err := labels.Put(title, due, label); err != nil {
				return fmt.Errorf("remember label: %w", err)
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"key": status.RawStatusKey(title, due, dayLocation()), "label": label, "status": status.Canonicalize(label),
				})
			}
			cmd.Printf("Remembered %q (%s) for %q on %s\n", label, status.Canonicalize(label).Title(), title, due.Format(dateLayout))
			return nil
		default:
			label, ok := labels.Get(title, due)
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]any{"label": label, "found": ok})
			}
			if !ok {
				cmd.Println("No label remembered for this occurrence.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), label)
			return nil
		}
	},
}

// one task as listed by status list
type taskRow struct {
	Title   string                 `json:"title"`
	Due     string                 `json:"due"`
	Label   string                 `json:"label"`
	Status  status.CanonicalStatus `json:"status"`
	Percent int                    `json:"percent"`
}

var statusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks with their resolved status",
	Example: `  cosmos status list
  cosmos status list --status stuck --status "need help"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		set, err := loadRecords(ctx)
		if err != nil {
			return recordsError(err)
		}
		r := newResolver(ctx)

		filters, _ := cmd.Flags().GetStringSlice("status")
		var wanted []status.CanonicalStatus
		for _, f := range filters {
			wanted = append(wanted, status.Canonicalize(f))
		}

		tasks := summary.FilterByStatus(set.Tasks, r, wanted...)
		rows := make([]taskRow, 0, len(tasks))
		for _, t := range tasks {
			rows = append(rows, taskRow{
				Title:   t.Title,
				Due:     t.DueDate.Format(dateLayout),
				Label:   r.DisplayLabel(t),
				Status:  r.Status(t),
				Percent: progress.Percentage(t.Progress.Float()),
			})
		}
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), rows)
		}
		if len(rows) == 0 {
			cmd.Println("No tasks found.")
			return nil
		}

		table := &ui.Table{Headers: []string{"Title", "Due", "Status", "Progress"}, MaxWidth: 40}
		for _, row := range rows {
			st := ui.HexStyle(dominant.TaskColor(row.Status))
			table.Rows = append(table.Rows, []string{row.Title, row.Due, st.Render(row.Label), fmt.Sprintf("%3d%%", row.Percent)})
		}
		fmt.Fprintln(cmd.OutOrStdout(), table.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.AddCommand(statusCanonicalizeCmd, statusOptionsCmd, statusSetOptionsCmd,
		statusKeyCmd, statusLabelCmd, statusListCmd)

	statusLabelCmd.Flags().Bool("forget", false, "forget the remembered label")
	statusListCmd.Flags().StringSlice("status", nil, "only tasks with this status (repeatable, any spelling)")
}
