package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/dominant"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
)

// TaskLine is one task as shown in the agenda.
type TaskLine struct {
	Title     string                 `json:"title"`
	Label     string                 `json:"label"`
	Status    status.CanonicalStatus `json:"status"`
	Percent   int                    `json:"percent"`
	Recurring bool                   `json:"recurring,omitempty"`
}

// MeetingLine is one meeting as shown in the agenda.
type MeetingLine struct {
	Title  string               `json:"title"`
	Status status.MeetingStatus `json:"status"`
	Time   time.Time            `json:"time"`
}

// RenderAgenda writes the records active on day. Tasks are grouped by
// canonical status, most urgent group first; verbose adds a detail table.
func RenderAgenda(w io.Writer, day time.Time, tasks []TaskLine, meetings []MeetingLine, verbose bool) {
	fmt.Fprintf(w, " %s  %s\n", StyleTitle.Render(day.Format("Monday, 02 January 2006")),
		StyleSubtle.Render(fmt.Sprintf("%d tasks • %d meetings", len(tasks), len(meetings))))
	fmt.Fprintln(w, StyleSubtle.Render(strings.Repeat("─", 50)))

	if len(tasks) == 0 && len(meetings) == 0 {
		fmt.Fprintln(w, StyleSubtle.Render(" Nothing scheduled."))
		return
	}

	if len(meetings) > 0 {
		fmt.Fprintln(w, StyleHeader.Render("Meetings"))
		sorted := append([]MeetingLine(nil), meetings...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })
		for _, m := range sorted {
			st := HexStyle(dominant.MeetingColor(m.Status))
			fmt.Fprintf(w, " • %s %s %s\n", StyleSubtle.Render(m.Time.Format("15:04")), StyleTitle.Render(m.Title),
				st.Render("["+m.Status.Title()+"]"))
		}
		fmt.Fprintln(w)
	}

	if len(tasks) == 0 {
		return
	}

	if verbose {
		renderTaskTable(w, tasks)
		return
	}

	groups := groupTasks(tasks)
	for _, st := range groupOrder(groups) {
		fmt.Fprintln(w, HexStyle(dominant.TaskColor(st)).Bold(true).Render(fmt.Sprintf(" %s (%d)", st.Title(), len(groups[st]))))
		for _, t := range groups[st] {
			line := fmt.Sprintf(" • %s %s %3d%%", StyleTitle.Render(t.Title), ProgressBar(t.Percent, 10), t.Percent)
			if t.Label != "" && t.Label != st.Title() {
				line += " " + StyleSubtle.Render("("+t.Label+")")
			}
			if t.Recurring {
				line += " " + StyleSubtle.Render("↻")
			}
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}
}

func renderTaskTable(w io.Writer, tasks []TaskLine) {
	table := &Table{Headers: []string{"Task", "Label", "Status", "Progress", "Recurring"}}
	for _, t := range tasks {
		recurring := "-"
		if t.Recurring {
			recurring = "yes"
		}
		table.Rows = append(table.Rows, []string{
			t.Title,
			t.Label,
			string(t.Status),
			fmt.Sprintf("%d%%", t.Percent),
			recurring,
		})
	}
	fmt.Fprint(w, table.Render())
}

func groupTasks(tasks []TaskLine) map[status.CanonicalStatus][]TaskLine {
	groups := make(map[status.CanonicalStatus][]TaskLine)
	for _, t := range tasks {
		groups[t.Status] = append(groups[t.Status], t)
	}
	return groups
}

// groupOrder sorts statuses by dominance, highest first.
func groupOrder(groups map[status.CanonicalStatus][]TaskLine) []status.CanonicalStatus {
	order := make([]status.CanonicalStatus, 0, len(groups))
	for st := range groups {
		order = append(order, st)
	}
	sort.Slice(order, func(i, j int) bool {
		return dominant.TaskRank(order[i]) > dominant.TaskRank(order[j])
	})
	return order
}
