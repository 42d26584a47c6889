package status

// MeetingStatus is the meeting vocabulary. It is smaller than, and separate
// from, the task taxonomy.
type MeetingStatus string

const (
	// MeetingStatusNone marks the absence of any meeting status.
	MeetingStatusNone MeetingStatus = ""
	MeetingScheduled  MeetingStatus = "scheduled"
	MeetingInProgress MeetingStatus = "in_progress"
	MeetingCompleted  MeetingStatus = "completed"
	MeetingCancelled  MeetingStatus = "cancelled"
)

var meetingTitles = map[MeetingStatus]string{
	MeetingScheduled:  "Scheduled",
	MeetingInProgress: "In Progress",
	MeetingCompleted:  "Completed",
	MeetingCancelled:  "Cancelled",
}

var meetingSynonyms = map[string]MeetingStatus{
	"scheduled":  MeetingScheduled,
	"upcoming":   MeetingScheduled,
	"planned":    MeetingScheduled,
	"inprogress": MeetingInProgress,
	"ongoing":    MeetingInProgress,
	"live":       MeetingInProgress,
	"completed":  MeetingCompleted,
	"complete":   MeetingCompleted,
	"done":       MeetingCompleted,
	"cancelled":  MeetingCancelled,
	"canceled":   MeetingCancelled,
}

// AllMeeting returns every meeting status in lifecycle order. Display
// priority is decided by the dominant package, not by this order.
func AllMeeting() []MeetingStatus {
	return []MeetingStatus{MeetingScheduled, MeetingInProgress, MeetingCompleted, MeetingCancelled}
}

// CanonicalizeMeeting maps a stored meeting label onto MeetingStatus.
// Unknown labels fall back to MeetingScheduled.
func CanonicalizeMeeting(label string) MeetingStatus {
	if s, ok := meetingSynonyms[Normalize(label)]; ok {
		return s
	}
	return MeetingScheduled
}

func (s MeetingStatus) String() string {
	return string(s)
}

// Title returns the human label, or "" for MeetingStatusNone.
func (s MeetingStatus) Title() string {
	return meetingTitles[s]
}
