package status

import (
	"strings"
	"sync/atomic"
)

var defaultLabels = []string{
	"TODO",
	"In Progress",
	"Stuck",
	"Waiting For",
	"Hold by Client",
	"Need Help",
	"Completed",
	"Canceled",
}

// DefaultLabels returns the built-in task status options.
func DefaultLabels() []string {
	out := make([]string, len(defaultLabels))
	copy(out, defaultLabels)
	return out
}

// Catalog is an immutable, ordered snapshot of administrator-configured
// status labels. Order is menu order. Entries may collide after
// normalization; the first one wins for lookups.
type Catalog struct {
	labels []string
}

// NewCatalog builds a snapshot from labels. Entries are trimmed and blanks
// dropped; order and duplicates are kept.
func NewCatalog(labels []string) *Catalog {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if trimmed := strings.TrimSpace(l); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return &Catalog{labels: out}
}

// DefaultCatalog returns a snapshot of DefaultLabels.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultLabels)
}

// Labels returns a copy of the labels in menu order.
func (c *Catalog) Labels() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Len returns the number of labels.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.labels)
}

// Match returns the first entry equal to raw after normalization.
func (c *Catalog) Match(raw string) (string, bool) {
	if c == nil {
		return "", false
	}
	key := Normalize(raw)
	if key == "" {
		return "", false
	}
	for _, l := range c.labels {
		if Normalize(l) == key {
			return l, true
		}
	}
	return "", false
}

// ForStatus returns every entry that canonicalizes to s, in menu order.
func (c *Catalog) ForStatus(s CanonicalStatus) []string {
	if c == nil {
		return nil
	}
	var out []string
	for _, l := range c.labels {
		if Canonicalize(l) == s {
			out = append(out, l)
		}
	}
	return out
}

// DefaultLabel returns the display text for s: the first entry that
// canonicalizes to s, else the built-in title.
func (c *Catalog) DefaultLabel(s CanonicalStatus) string {
	if c != nil {
		for _, l := range c.labels {
			if Canonicalize(l) == s {
				return l
			}
		}
	}
	return s.Title()
}

// CatalogHolder publishes the current Catalog. A single updater replaces the
// snapshot; readers always observe a complete one.
type CatalogHolder struct {
	current atomic.Pointer[Catalog]
}

// NewCatalogHolder returns a holder seeded with c, or the defaults when c is nil.
func NewCatalogHolder(c *Catalog) *CatalogHolder {
	h := &CatalogHolder{}
	if c == nil {
		c = DefaultCatalog()
	}
	h.current.Store(c)
	return h
}

// Load returns the current snapshot. It never returns nil.
func (h *CatalogHolder) Load() *Catalog {
	if c := h.current.Load(); c != nil {
		return c
	}
	return DefaultCatalog()
}

// Store swaps in c. A nil c is ignored.
func (h *CatalogHolder) Store(c *Catalog) {
	if c == nil {
		return
	}
	h.current.Store(c)
}

// Replace builds a snapshot from labels and swaps it in.
func (h *CatalogHolder) Replace(labels []string) *Catalog {
	c := NewCatalog(labels)
	h.current.Store(c)
	return c
}
