/*
Copyright © 2026 The Cosmos Authors
*/
package cmd

import (
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/dominant"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/progress"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/recurrence"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/ui"
	"github.com/phukemrunal322-hue/cosmos-sub003/models"
	"github.com/spf13/cobra"
)

type agendaOutput struct {
	Date     string           `json:"date"`
	Shade    dominant.Shade   `json:"shade"`
	Tasks    []ui.TaskLine    `json:"tasks"`
	Meetings []ui.MeetingLine `json:"meetings"`
}

// agendaCmd shows what is on one day
var agendaCmd = &cobra.Command{
	Use:   "agenda [date]",
	Short: "Show the tasks and meetings on a day",
	Long: `Show every task active on a day and every meeting held on it.

A recurring task with an end date is active on each day of its window, from
its due date through the end date. Other tasks only appear on their due date.`,
	Example: `  cosmos agenda
  cosmos agenda tomorrow
  cosmos agenda 2024-03-05 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAgenda,
}

func init() {
	rootCmd.AddCommand(agendaCmd)
}

func runAgenda(cmd *cobra.Command, args []string) error {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	day, err := parseDay(arg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	set, err := loadRecords(ctx)
	if err != nil {
		return recordsError(err)
	}
	r := newResolver(ctx)

	tasks := recurrence.ActiveOn(set.Tasks, day)
	meetings := recurrence.MeetingsOn(set.Meetings, day)
	out := agendaOutput{
		Date:     day.Format(dateLayout),
		Shade:    dayShade(r, tasks, meetings),
		Tasks:    taskLines(r, tasks),
		Meetings: meetingLines(meetings),
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), out)
	}
	ui.RenderAgenda(cmd.OutOrStdout(), day, out.Tasks, out.Meetings, isVerbose())
	return nil
}

func taskLines(r *status.Resolver, tasks []models.TaskRecord) []ui.TaskLine {
	lines := make([]ui.TaskLine, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, ui.TaskLine{
			Title:     t.Title,
			Label:     r.DisplayLabel(t),
			Status:    r.Status(t),
			Percent:   progress.Percentage(t.Progress.Float()),
			Recurring: t.IsRecurring,
		})
	}
	return lines
}

func meetingLines(meetings []models.MeetingRecord) []ui.MeetingLine {
	lines := make([]ui.MeetingLine, 0, len(meetings))
	for _, m := range meetings {
		lines = append(lines, ui.MeetingLine{
			Title:  m.Title,
			Status: status.CanonicalizeMeeting(m.Status),
			Time:   m.Date.Time,
		})
	}
	return lines
}

// dayShade shades a day the way the calendar does, resolving task statuses
// through r so remembered labels count.
func dayShade(r *status.Resolver, tasks []models.TaskRecord, meetings []models.MeetingRecord) dominant.Shade {
	if len(meetings) > 0 {
		statuses := make([]status.MeetingStatus, 0, len(meetings))
		for _, m := range meetings {
			statuses = append(statuses, status.CanonicalizeMeeting(m.Status))
		}
		return dominant.MeetingShade(statuses)
	}
	statuses := make([]status.CanonicalStatus, 0, len(tasks))
	for _, t := range tasks {
		statuses = append(statuses, r.Status(t))
	}
	return dominant.TaskShade(statuses)
}
