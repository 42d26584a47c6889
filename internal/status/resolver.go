package status

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/phukemrunal322-hue/cosmos-sub003/models"
	"golang.org/x/text/cases"
)

// dayKeyLayout is the calendar date part of an occurrence key.
const dayKeyLayout = "2006-01-02"

// RawStatusKey identifies one task occurrence by normalized title and the
// calendar date of due as seen from loc (time.Local when nil). The record model
// has no identifier that survives edits, so custom labels are remembered under
// this key instead. The key depends only on the instant, never on the zone due
// happened to be decoded in.
func RawStatusKey(title string, due time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	normalized := strings.Join(strings.Fields(cases.Fold().String(title)), " ")
	return fmt.Sprintf("%s|%s", normalized, due.In(loc).Format(dayKeyLayout))
}

// EffectiveStatus returns the canonical status used for filtering and counting.
// The stored status wins; the raw label is only consulted when none is stored.
func EffectiveStatus(task models.TaskRecord) CanonicalStatus {
	if strings.TrimSpace(task.Status) != "" {
		return Canonicalize(task.Status)
	}
	return Canonicalize(task.RawStatusLabel)
}

// DisplayLabel returns the text to show for a task's status: the catalog entry
// matching the raw label, else the raw label itself, else the catalog's label
// for the task's canonical status.
func DisplayLabel(task models.TaskRecord, c *Catalog) string {
	raw := strings.TrimSpace(task.RawStatusLabel)
	if raw != "" {
		if match, ok := c.Match(raw); ok {
			return match
		}
		return raw
	}
	return c.DefaultLabel(EffectiveStatus(task))
}

// LabelMemory remembers custom labels per task occurrence. Occurrence days
// are read in the memory's location. Safe for concurrent use.
type LabelMemory struct {
	mu     sync.RWMutex
	loc    *time.Location
	labels map[string]string
}

// NewLabelMemory returns an empty memory keyed on calendar days in loc
// (time.Local when nil).
func NewLabelMemory(loc *time.Location) *LabelMemory {
	if loc == nil {
		loc = time.Local
	}
	return &LabelMemory{loc: loc, labels: make(map[string]string)}
}

// Location returns the zone occurrence days are read in.
func (m *LabelMemory) Location() *time.Location {
	return m.loc
}

// Remember stores label for the occurrence. An empty label forgets it.
func (m *LabelMemory) Remember(title string, due time.Time, label string) {
	label = strings.TrimSpace(label)
	key := RawStatusKey(title, due, m.loc)

	m.mu.Lock()
	defer m.mu.Unlock()
	if label == "" {
		delete(m.labels, key)
		return
	}
	m.labels[key] = label
}

// Recall returns the label stored for the occurrence.
func (m *LabelMemory) Recall(title string, due time.Time) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	label, ok := m.labels[RawStatusKey(title, due, m.loc)]
	return label, ok
}

// Forget drops the occurrence's label.
func (m *LabelMemory) Forget(title string, due time.Time) {
	m.Remember(title, due, "")
}

// Len returns the number of remembered occurrences.
func (m *LabelMemory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.labels)
}

// Resolver combines the current catalog snapshot with per-occurrence label
// memory. Callers own both and pass them in; the resolver holds no global state.
type Resolver struct {
	catalog *CatalogHolder
	memory  *LabelMemory
}

// NewResolver builds a resolver. Nil arguments are replaced with a default
// catalog and an empty memory.
func NewResolver(catalog *CatalogHolder, memory *LabelMemory) *Resolver {
	if catalog == nil {
		catalog = NewCatalogHolder(nil)
	}
	if memory == nil {
		memory = NewLabelMemory(nil)
	}
	return &Resolver{catalog: catalog, memory: memory}
}

// Catalog returns the current snapshot.
func (r *Resolver) Catalog() *Catalog {
	return r.catalog.Load()
}

// Options returns the status labels in menu order.
func (r *Resolver) Options() []string {
	return r.catalog.Load().Labels()
}

// Status returns the task's canonical status.
func (r *Resolver) Status(task models.TaskRecord) CanonicalStatus {
	if strings.TrimSpace(task.Status) == "" && strings.TrimSpace(task.RawStatusLabel) == "" {
		if label, ok := r.memory.Recall(task.Title, task.DueDate.Time); ok {
			return Canonicalize(label)
		}
	}
	return EffectiveStatus(task)
}

// DisplayLabel returns the task's display label. A label remembered for the
// occurrence is used when the record carries none.
func (r *Resolver) DisplayLabel(task models.TaskRecord) string {
	if strings.TrimSpace(task.RawStatusLabel) == "" {
		if label, ok := r.memory.Recall(task.Title, task.DueDate.Time); ok {
			task.RawStatusLabel = label
		}
	}
	return DisplayLabel(task, r.catalog.Load())
}

// Remember records label as the administrator's choice for the task occurrence.
func (r *Resolver) Remember(task models.TaskRecord, label string) {
	r.memory.Remember(task.Title, task.DueDate.Time, label)
}

// Memory returns the underlying label memory.
func (r *Resolver) Memory() *LabelMemory {
	return r.memory
}
