package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_TrimsAndKeepsOrder(t *testing.T) {
	c := NewCatalog([]string{" TODO ", "", "In Progress", "in-progress", "  "})

	assert.Equal(t, []string{"TODO", "In Progress", "in-progress"}, c.Labels())
	assert.Equal(t, 3, c.Len())
}

func TestCatalog_LabelsIsACopy(t *testing.T) {
	c := NewCatalog([]string{"TODO"})
	labels := c.Labels()
	labels[0] = "mutated"
	assert.Equal(t, []string{"TODO"}, c.Labels())
}

func TestCatalog_Match(t *testing.T) {
	c := NewCatalog([]string{"TODO", "In Progress", "In-Progress", "Review by PM"})

	got, ok := c.Match("in progress")
	require.True(t, ok)
	assert.Equal(t, "In Progress", got, "first colliding entry wins")

	got, ok = c.Match("review_by_pm")
	require.True(t, ok)
	assert.Equal(t, "Review by PM", got)

	_, ok = c.Match("Blocked")
	assert.False(t, ok)

	_, ok = c.Match("")
	assert.False(t, ok)
}

func TestCatalog_DefaultLabel(t *testing.T) {
	c := NewCatalog([]string{"Backlog", "Doing", "Done"})

	assert.Equal(t, "Doing", c.DefaultLabel(InProgress))
	assert.Equal(t, "Done", c.DefaultLabel(Completed))
	// "Backlog" is unknown and falls back to NotStarted.
	assert.Equal(t, "Backlog", c.DefaultLabel(NotStarted))
	assert.Equal(t, "Need Help", c.DefaultLabel(NeedHelp))
}

func TestCatalog_ForStatus(t *testing.T) {
	c := NewCatalog([]string{"Done", "TODO", "Complete"})
	assert.Equal(t, []string{"Done", "Complete"}, c.ForStatus(Completed))
	assert.Empty(t, c.ForStatus(Stuck))
}

func TestCatalog_NilIsEmpty(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Labels())
	_, ok := c.Match("TODO")
	assert.False(t, ok)
	assert.Equal(t, "Completed", c.DefaultLabel(Completed))
}

func TestCatalogHolder_Replace(t *testing.T) {
	h := NewCatalogHolder(nil)
	assert.Equal(t, DefaultLabels(), h.Load().Labels())

	before := h.Load()
	h.Replace([]string{"Open", "Closed"})

	assert.Equal(t, []string{"Open", "Closed"}, h.Load().Labels())
	assert.Equal(t, DefaultLabels(), before.Labels(), "old snapshot is untouched")

	h.Store(nil)
	assert.Equal(t, []string{"Open", "Closed"}, h.Load().Labels())
}

func TestCatalogHolder_ZeroValueLoadsDefaults(t *testing.T) {
	var h CatalogHolder
	assert.Equal(t, DefaultLabels(), h.Load().Labels())
}

func TestCatalogHolder_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	h := NewCatalogHolder(NewCatalog([]string{"a1", "a2", "a3"}))
	a := []string{"a1", "a2", "a3"}
	b := []string{"b1", "b2", "b3", "b4"}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if i%2 == 0 {
				h.Replace(b)
			} else {
				h.Replace(a)
			}
		}
	}()

	for i := 0; i < 500; i++ {
		got := h.Load().Labels()
		if len(got) == 3 {
			assert.Equal(t, a, got)
		} else {
			assert.Equal(t, b, got)
		}
	}
	wg.Wait()
}
