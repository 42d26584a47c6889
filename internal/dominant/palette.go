package dominant

import "github.com/phukemrunal322-hue/cosmos-sub003/internal/status"

// NoneColor is drawn for days without records.
const NoneColor = "#E5E7EB"

var taskColors = map[status.CanonicalStatus]string{
	status.NotStarted:       "#9CA3AF",
	status.InProgress:       "#3B82F6",
	status.Stuck:            "#F97316",
	status.WaitingForClient: "#A855F7",
	status.OnHoldByClient:   "#EAB308",
	status.NeedHelp:         "#EC4899",
	status.Completed:        "#22C55E",
	status.Canceled:         "#EF4444",
}

var meetingColors = map[status.MeetingStatus]string{
	status.MeetingScheduled:  "#6366F1",
	status.MeetingInProgress: "#3B82F6",
	status.MeetingCompleted:  "#22C55E",
	status.MeetingCancelled:  "#EF4444",
}

// TaskColor returns the hex color for a task status.
func TaskColor(s status.CanonicalStatus) string {
	if c, ok := taskColors[s]; ok {
		return c
	}
	return NoneColor
}

// MeetingColor returns the hex color for a meeting status.
func MeetingColor(s status.MeetingStatus) string {
	if c, ok := meetingColors[s]; ok {
		return c
	}
	return NoneColor
}
