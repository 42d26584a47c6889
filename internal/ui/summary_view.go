package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/dominant"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/summary"
)

// RenderSummary writes task and project counters as two panels.
func RenderSummary(w io.Writer, tasks summary.TaskSummary, projects summary.ProjectSummary) {
	var sb strings.Builder
	for _, st := range status.All() {
		n := tasks.Count(st)
		if n == 0 {
			continue
		}
		fmt.Fprintf(&sb, "%s %-20s %d\n", HexStyle(dominant.TaskColor(st)).Render("■"), st.Title(), n)
	}
	fmt.Fprintf(&sb, "\nTotal %d • Open %d • Overdue %s • Today %d\n",
		tasks.Total, tasks.Open(), overdueText(tasks.Overdue), tasks.DueToday)
	fmt.Fprintf(&sb, "Average progress %s %d%%", ProgressBar(tasks.AverageProgress, 20), tasks.AverageProgress)
	fmt.Fprintln(w, NewPanel("Tasks", sb.String()).Render())

	content := fmt.Sprintf("Total %d • Complete %d • Active %d\nAverage %s %d%%",
		projects.Total, projects.Complete, projects.Active,
		ProgressBar(projects.AveragePercentage, 20), projects.AveragePercentage)
	fmt.Fprintln(w, NewPanel("Projects", content).WithBorderColor(ColorCyan).Render())
}

func overdueText(n int) string {
	if n == 0 {
		return StyleSuccess.Render("0")
	}
	return StyleError.Render(fmt.Sprintf("%d", n))
}
