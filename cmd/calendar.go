/*
Copyright © 2026 The Cosmos Authors
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/calendar"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/config"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/dominant"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/ui"
	"github.com/spf13/cobra"
)

// Shading modes for the calendar command.
const (
	kindAuto     = "auto"
	kindTasks    = "tasks"
	kindMeetings = "meetings"
)

type calendarCell struct {
	Date     string         `json:"date,omitempty"`
	Blank    bool           `json:"blank,omitempty"`
	InMonth  bool           `json:"inMonth"`
	Tasks    int            `json:"tasks"`
	Meetings int            `json:"meetings"`
	Shade    dominant.Shade `json:"shade"`
}

type calendarOutput struct {
	Month     string         `json:"month"`
	Layout    string         `json:"layout"`
	WeekStart string         `json:"weekStart"`
	Cells     []calendarCell `json:"cells"`
}

// calendarCmd renders a month grid
var calendarCmd = &cobra.Command{
	Use:   "calendar [month]",
	Short: "Show a month calendar shaded by status",
	Long: `Show a month as a grid of weeks. Each day is shaded by the most urgent
status on it: meetings when the day has any, else tasks.

Layouts:
  padded  blank cells before the 1st, trailing cells only to finish the last week
  week    whole weeks, with days from the neighbouring months greyed out`,
	Example: `  cosmos calendar
  cosmos calendar 2024-03 --layout week --week-start sunday
  cosmos calendar "March 2024" --kind tasks`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().String("layout", "", "grid layout: padded or week (default from config)")
	calendarCmd.Flags().String("week-start", "", "first day of the week (default from config)")
	calendarCmd.Flags().String("kind", kindAuto, "shade by: auto, tasks or meetings")
}

func runCalendar(cmd *cobra.Command, args []string) error {
	cfg := config.LoadCalendarConfig()
	if v, _ := cmd.Flags().GetString("layout"); v != "" {
		layout, err := calendar.ParseLayout(v)
		if err != nil {
			return err
		}
		cfg.Layout = layout
	}
	if v, _ := cmd.Flags().GetString("week-start"); v != "" {
		ws, err := calendar.ParseWeekday(v)
		if err != nil {
			return err
		}
		cfg.WeekStart = ws
	}
	kind, _ := cmd.Flags().GetString("kind")
	kind = strings.ToLower(kind)
	if kind != kindAuto && kind != kindTasks && kind != kindMeetings {
		return fmt.Errorf("invalid --kind %q: use auto, tasks or meetings", kind)
	}

	month := calendar.FirstOfMonth(now())
	if len(args) > 0 {
		m, err := calendar.ParseMonth(args[0], now().Location())
		if err != nil {
			return err
		}
		month = m
	}

	ctx := cmd.Context()
	set, err := loadRecords(ctx)
	if err != nil {
		return recordsError(err)
	}
	r := newResolver(ctx)

	grid := calendar.BuildGrid(month, cfg.Layout, cfg.WeekStart)
	days := calendar.Aggregate(grid, set.Tasks, set.Meetings)
	shade := shadeFunc(r, kind)

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), calendarJSON(grid, days, shade))
	}
	ui.RenderMonth(cmd.OutOrStdout(), grid, days, shade, now())
	return nil
}

// shadeFunc picks the shading for kind. Task statuses go through r.
func shadeFunc(r *status.Resolver, kind string) ui.ShadeFunc {
	return func(day calendar.CalendarDay) dominant.Shade {
		switch kind {
		case kindMeetings:
			return dominant.MeetingShade(dominant.MeetingStatuses(day))
		case kindTasks:
			return dayShade(r, day.Tasks, nil)
		default:
			return dayShade(r, day.Tasks, day.Meetings)
		}
	}
}

func calendarJSON(g calendar.Grid, days []calendar.CalendarDay, shade ui.ShadeFunc) calendarOutput {
	out := calendarOutput{
		Month:     g.Month.Format("2006-01"),
		Layout:    string(g.Layout),
		WeekStart: strings.ToLower(g.WeekStart.String()),
		Cells:     make([]calendarCell, 0, len(g.Cells)),
	}
	i := 0
	for _, c := range g.Cells {
		if c.Blank {
			out.Cells = append(out.Cells, calendarCell{Blank: true, Shade: dominant.NoShade})
			continue
		}
		d := days[i]
		i++
		out.Cells = append(out.Cells, calendarCell{
			Date:     d.Date.Format(dateLayout),
			InMonth:  d.InMonth,
			Tasks:    len(d.Tasks),
			Meetings: len(d.Meetings),
			Shade:    shade(d),
		})
	}
	return out
}
