// Package summary computes the dashboard counters over tasks and projects.
package summary

import (
	"time"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/progress"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/recurrence"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
	"github.com/phukemrunal322-hue/cosmos-sub003/models"
)

// TaskSummary counts tasks per canonical status.
type TaskSummary struct {
	Total           int                            `json:"total"`
	ByStatus        map[status.CanonicalStatus]int `json:"byStatus"`
	Overdue         int                            `json:"overdue"`
	DueToday        int                            `json:"dueToday"`
	AverageProgress int                            `json:"averageProgress"`
}

// Count returns the number of tasks with status s.
func (s TaskSummary) Count(st status.CanonicalStatus) int {
	return s.ByStatus[st]
}

// Open returns the number of tasks that are neither completed nor canceled.
func (s TaskSummary) Open() int {
	open := 0
	for st, n := range s.ByStatus {
		if !st.IsTerminal() {
			open += n
		}
	}
	return open
}

// Tasks summarizes tasks as of today. A task is overdue when its window ended
// before today and it is not in a terminal status.
func Tasks(tasks []models.TaskRecord, r *status.Resolver, today time.Time) TaskSummary {
	if r == nil {
		r = status.NewResolver(nil, nil)
	}
	sum := TaskSummary{
		Total:    len(tasks),
		ByStatus: make(map[status.CanonicalStatus]int, len(status.All())),
	}
	day := recurrence.StartOfDay(today)
	values := make([]float64, 0, len(tasks))

	for _, t := range tasks {
		st := r.Status(t)
		sum.ByStatus[st]++
		values = append(values, t.Progress.Float())

		if t.DueDate.IsZero() {
			continue
		}
		_, end := recurrence.Window(t, today.Location())
		if end.Before(day) && !st.IsTerminal() {
			sum.Overdue++
		}
		if recurrence.IsActiveOn(t, today) {
			sum.DueToday++
		}
	}
	sum.AverageProgress = progress.Average(values...)
	return sum
}

// ProjectSummary counts projects by completion.
type ProjectSummary struct {
	Total             int `json:"total"`
	Complete          int `json:"complete"`
	Active            int `json:"active"`
	AveragePercentage int `json:"averagePercentage"`
}

// Projects summarizes projects by their progress values.
func Projects(projects []models.ProjectRecord) ProjectSummary {
	sum := ProjectSummary{Total: len(projects)}
	values := make([]float64, 0, len(projects))
	for _, p := range projects {
		values = append(values, p.Progress.Float())
		if progress.IsComplete(p.Progress.Float()) {
			sum.Complete++
		} else {
			sum.Active++
		}
	}
	sum.AveragePercentage = progress.Average(values...)
	return sum
}

// FilterByStatus returns the tasks whose effective status is one of statuses,
// in input order. No statuses returns every task.
func FilterByStatus(tasks []models.TaskRecord, r *status.Resolver, statuses ...status.CanonicalStatus) []models.TaskRecord {
	if len(statuses) == 0 {
		return tasks
	}
	if r == nil {
		r = status.NewResolver(nil, nil)
	}
	want := make(map[status.CanonicalStatus]bool, len(statuses))
	for _, s := range statuses {
		want[s] = true
	}
	var out []models.TaskRecord
	for _, t := range tasks {
		if want[r.Status(t)] {
			out = append(out, t)
		}
	}
	return out
}
