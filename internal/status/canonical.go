// Package status reconciles the fixed task taxonomy with the free-text
// labels administrators configure and pick per task occurrence.
//
// Every label, known or not, canonicalizes to exactly one CanonicalStatus
// for filtering and counting, while the exact string an administrator chose
// is kept for display.
package status

// CanonicalStatus is the closed task taxonomy used for business rules.
type CanonicalStatus string

const (
	NotStarted       CanonicalStatus = "not_started"
	InProgress       CanonicalStatus = "in_progress"
	Stuck            CanonicalStatus = "stuck"
	WaitingForClient CanonicalStatus = "waiting_for_client"
	OnHoldByClient   CanonicalStatus = "on_hold_by_client"
	NeedHelp         CanonicalStatus = "need_help"
	Completed        CanonicalStatus = "completed"
	Canceled         CanonicalStatus = "canceled"
)

var allStatuses = []CanonicalStatus{
	NotStarted, InProgress, Stuck, WaitingForClient,
	OnHoldByClient, NeedHelp, Completed, Canceled,
}

var statusTitles = map[CanonicalStatus]string{
	NotStarted:       "Not Started",
	InProgress:       "In Progress",
	Stuck:            "Stuck",
	WaitingForClient: "Waiting For Client",
	OnHoldByClient:   "On Hold By Client",
	NeedHelp:         "Need Help",
	Completed:        "Completed",
	Canceled:         "Canceled",
}

// All returns every canonical status in taxonomy order.
func All() []CanonicalStatus {
	out := make([]CanonicalStatus, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// Valid reports whether s is a member of the taxonomy.
func (s CanonicalStatus) Valid() bool {
	_, ok := statusTitles[s]
	return ok
}

func (s CanonicalStatus) String() string {
	return string(s)
}

// Title returns the built-in human label, used when the catalog has none.
func (s CanonicalStatus) Title() string {
	if title, ok := statusTitles[s]; ok {
		return title
	}
	return statusTitles[NotStarted]
}

// IsTerminal reports whether no further work is expected.
func (s CanonicalStatus) IsTerminal() bool {
	return s == Completed || s == Canceled
}
