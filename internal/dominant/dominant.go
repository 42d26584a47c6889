// Package dominant picks the single status that colors a calendar day.
//
// When several records fall on the same day the one with the highest fixed
// priority wins, so trouble (cancellations, blocked work) is never hidden
// behind routine states.
package dominant

import (
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/calendar"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
)

var meetingPriority = map[status.MeetingStatus]int{
	status.MeetingCancelled:  4,
	status.MeetingInProgress: 3,
	status.MeetingCompleted:  2,
	status.MeetingScheduled:  1,
}

var taskPriority = map[status.CanonicalStatus]int{
	status.Canceled:         8,
	status.Stuck:            7,
	status.NeedHelp:         6,
	status.OnHoldByClient:   5,
	status.WaitingForClient: 4,
	status.InProgress:       3,
	status.Completed:        2,
	status.NotStarted:       1,
}

// Meeting returns the highest-priority meeting status, or MeetingStatusNone
// for an empty list. Unknown values rank below Scheduled.
func Meeting(statuses []status.MeetingStatus) status.MeetingStatus {
	best := status.MeetingStatusNone
	bestRank := 0
	for _, s := range statuses {
		if r := meetingPriority[s]; r > bestRank {
			best, bestRank = s, r
		}
	}
	return best
}

// Task returns the highest-priority task status. ok is false for an empty list.
func Task(statuses []status.CanonicalStatus) (status.CanonicalStatus, bool) {
	if len(statuses) == 0 {
		return "", false
	}
	best := status.NotStarted
	bestRank := 0
	for _, s := range statuses {
		if r := taskPriority[s]; r > bestRank {
			best, bestRank = s, r
		}
	}
	return best, true
}

// MeetingRank exposes the fixed meeting priority, 0 for unknown values.
func MeetingRank(s status.MeetingStatus) int { return meetingPriority[s] }

// TaskRank exposes the fixed task priority, 0 for unknown values.
func TaskRank(s status.CanonicalStatus) int { return taskPriority[s] }

// Shade is the label and color a day cell is drawn with.
type Shade struct {
	Label string `json:"label"`
	Color string `json:"color"`
	None  bool   `json:"none,omitempty"`
}

// NoShade is the sentinel for a day with nothing on it.
var NoShade = Shade{Label: "", Color: NoneColor, None: true}

// MeetingShade shades a day by the dominant meeting status.
func MeetingShade(statuses []status.MeetingStatus) Shade {
	s := Meeting(statuses)
	if s == status.MeetingStatusNone {
		return NoShade
	}
	return Shade{Label: s.Title(), Color: MeetingColor(s)}
}

// TaskShade shades a day by the dominant task status.
func TaskShade(statuses []status.CanonicalStatus) Shade {
	s, ok := Task(statuses)
	if !ok {
		return NoShade
	}
	return Shade{Label: s.Title(), Color: TaskColor(s)}
}

// DayShade uses the day's meetings when it has any, else its tasks.
func DayShade(day calendar.CalendarDay) Shade {
	if len(day.Meetings) > 0 {
		return MeetingShade(MeetingStatuses(day))
	}
	return TaskShade(TaskStatuses(day))
}

// MeetingStatuses canonicalizes the day's meeting statuses.
func MeetingStatuses(day calendar.CalendarDay) []status.MeetingStatus {
	out := make([]status.MeetingStatus, 0, len(day.Meetings))
	for _, m := range day.Meetings {
		out = append(out, status.CanonicalizeMeeting(m.Status))
	}
	return out
}

// TaskStatuses returns the effective canonical status of each task on the day.
func TaskStatuses(day calendar.CalendarDay) []status.CanonicalStatus {
	out := make([]status.CanonicalStatus, 0, len(day.Tasks))
	for _, t := range day.Tasks {
		out = append(out, status.EffectiveStatus(t))
	}
	return out
}
