package calendar

import (
	"time"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/recurrence"
	"github.com/phukemrunal322-hue/cosmos-sub003/models"
)

// CalendarDay is a date with the tasks and meetings active on it.
type CalendarDay struct {
	Date     time.Time              `json:"date"`
	InMonth  bool                   `json:"inMonth"`
	Tasks    []models.TaskRecord    `json:"tasks,omitempty"`
	Meetings []models.MeetingRecord `json:"meetings,omitempty"`
}

// Empty reports whether nothing is active on the day.
func (d CalendarDay) Empty() bool {
	return len(d.Tasks) == 0 && len(d.Meetings) == 0
}

// Day collects the records active on date.
func Day(date time.Time, tasks []models.TaskRecord, meetings []models.MeetingRecord) CalendarDay {
	return CalendarDay{
		Date:     StartOfDay(date),
		InMonth:  true,
		Tasks:    recurrence.ActiveOn(tasks, date),
		Meetings: recurrence.MeetingsOn(meetings, date),
	}
}

// Aggregate returns one CalendarDay per populated grid cell, in grid order.
func Aggregate(g Grid, tasks []models.TaskRecord, meetings []models.MeetingRecord) []CalendarDay {
	out := make([]CalendarDay, 0, len(g.Cells))
	for _, c := range g.Cells {
		if c.Blank {
			continue
		}
		d := Day(c.Date, tasks, meetings)
		d.InMonth = c.InMonth
		out = append(out, d)
	}
	return out
}
