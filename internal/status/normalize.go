package status

import (
	"strings"

	"golang.org/x/text/cases"
)

// synonyms maps normalized labels onto the taxonomy. Every constant's wire
// value and Title normalize to a key here, which keeps Canonicalize stable
// when applied to its own output.
var synonyms = map[string]CanonicalStatus{
	"todo":       NotStarted,
	"notstarted": NotStarted,
	"pending":    NotStarted,

	"inprogress": InProgress,
	"doing":      InProgress,
	"started":    InProgress,
	"working":    InProgress,

	"stuck":   Stuck,
	"blocked": Stuck,

	"waitingfor":       WaitingForClient,
	"waiting":          WaitingForClient,
	"waitingforclient": WaitingForClient,
	"waitingonclient":  WaitingForClient,

	"holdbyclient":   OnHoldByClient,
	"onholdbyclient": OnHoldByClient,
	"hold":           OnHoldByClient,
	"onhold":         OnHoldByClient,

	"needhelp":  NeedHelp,
	"needshelp": NeedHelp,

	"done":      Completed,
	"completed": Completed,
	"complete":  Completed,
	"finished":  Completed,

	"canceled":  Canceled,
	"cancelled": Canceled,
}

var separators = strings.NewReplacer(" ", "", "-", "", "_", "", "\t", "")

// Normalize folds a label for comparison: trimmed, case-folded, with spaces,
// hyphens and underscores removed. "To-Do", "to do" and "TODO" all become "todo".
func Normalize(label string) string {
	folded := cases.Fold().String(strings.TrimSpace(label))
	return separators.Replace(folded)
}

// Canonicalize maps any label onto the taxonomy. It never fails: labels that
// match no synonym are NotStarted.
func Canonicalize(label string) CanonicalStatus {
	if s, ok := synonyms[Normalize(label)]; ok {
		return s
	}
	return NotStarted
}

// IsKnown reports whether label matches a synonym rather than falling back.
func IsKnown(label string) bool {
	_, ok := synonyms[Normalize(label)]
	return ok
}
