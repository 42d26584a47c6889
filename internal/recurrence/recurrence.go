// Package recurrence decides on which calendar days a task or meeting is active.
//
// A recurring task is active on every day of its inclusive window, from its
// due day through its recurring end day. Without an end date the window is
// just the due day. RecurringPattern is recorded on tasks but not used here:
// the window is always one contiguous range.
package recurrence

import (
	"time"

	"github.com/phukemrunal322-hue/cosmos-sub003/models"
)

// StartOfDay returns local midnight of t in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayIn truncates t to its calendar day as seen from loc.
func dayIn(t time.Time, loc *time.Location) time.Time {
	return StartOfDay(t.In(loc))
}

// Window returns the task's active window as day starts in loc, inclusive on
// both ends. Non-recurring tasks, unbounded recurring tasks and windows whose
// end precedes the due day all collapse to the due day.
func Window(task models.TaskRecord, loc *time.Location) (start, end time.Time) {
	if loc == nil {
		loc = time.Local
	}
	start = dayIn(task.DueDate.Time, loc)
	end = start
	if task.IsRecurring && task.HasRecurringEnd() {
		if last := dayIn(task.RecurringEndDate.Time, loc); !last.Before(start) {
			end = last
		}
	}
	return start, end
}

// IsActiveOn reports whether task occurs on day. Days are compared in day's
// location. It never looks at the current time.
func IsActiveOn(task models.TaskRecord, day time.Time) bool {
	d := StartOfDay(day)
	start, end := Window(task, day.Location())
	return !d.Before(start) && !d.After(end)
}

// ActiveOn returns the tasks active on day, in input order.
func ActiveOn(tasks []models.TaskRecord, day time.Time) []models.TaskRecord {
	var out []models.TaskRecord
	for _, t := range tasks {
		if IsActiveOn(t, day) {
			out = append(out, t)
		}
	}
	return out
}

// Occurrences returns each day in [from, to] on which task is active,
// ascending, as day starts in from's location.
func Occurrences(task models.TaskRecord, from, to time.Time) []time.Time {
	loc := from.Location()
	first := StartOfDay(from)
	last := dayIn(to, loc)
	start, end := Window(task, loc)
	if start.After(first) {
		first = start
	}
	if end.Before(last) {
		last = end
	}

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MeetingOn reports whether meeting takes place on day.
func MeetingOn(meeting models.MeetingRecord, day time.Time) bool {
	return dayIn(meeting.Date.Time, day.Location()).Equal(StartOfDay(day))
}

// MeetingsOn returns the meetings on day, in input order.
func MeetingsOn(meetings []models.MeetingRecord, day time.Time) []models.MeetingRecord {
	var out []models.MeetingRecord
	for _, m := range meetings {
		if MeetingOn(m, day) {
			out = append(out, m)
		}
	}
	return out
}
