package status

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/phukemrunal322-hue/cosmos-sub003/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawStatusKey(t *testing.T) {
	d := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "fix bug|2024-03-05", RawStatusKey("Fix Bug", d, time.UTC))
	assert.Equal(t, RawStatusKey("Fix Bug ", d, time.UTC), RawStatusKey("fix bug", d, time.UTC))
	assert.Equal(t, RawStatusKey("Fix   Bug", d, time.UTC), RawStatusKey("fix bug", d, time.UTC))
	assert.Equal(t, RawStatusKey("Fix Bug", d, time.UTC), RawStatusKey("Fix Bug", d.Add(-14*time.Hour), time.UTC), "same day")
	assert.NotEqual(t, RawStatusKey("Fix Bug ", d, time.UTC), RawStatusKey("Fix Bug", d.AddDate(0, 0, 1), time.UTC))
	assert.NotEqual(t, RawStatusKey("Fix Bug", d, time.UTC), RawStatusKey("Fix Bugs", d, time.UTC))
}

func TestRawStatusKey_IndependentOfDecodedZone(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	instant := time.Date(2024, 3, 5, 3, 0, 0, 0, time.UTC)

	for _, loc := range []*time.Location{time.UTC, ny} {
		assert.Equal(t,
			RawStatusKey("Fix Bug", instant, loc),
			RawStatusKey("Fix Bug", instant.In(ny), loc),
			"key read in %s", loc)
		assert.Equal(t,
			RawStatusKey("Fix Bug", instant, loc),
			RawStatusKey("Fix Bug", instant.In(time.FixedZone("", 9*3600)), loc))
	}

	// 03:00 UTC is still the evening before in New York
	assert.Equal(t, "fix bug|2024-03-04", RawStatusKey("Fix Bug", instant, ny))
	assert.Equal(t, "fix bug|2024-03-05", RawStatusKey("Fix Bug", instant, time.UTC))
}

func TestEffectiveStatus(t *testing.T) {
	assert.Equal(t, Completed, EffectiveStatus(models.TaskRecord{Status: "completed", RawStatusLabel: "Waiting For"}))
	assert.Equal(t, WaitingForClient, EffectiveStatus(models.TaskRecord{RawStatusLabel: "Waiting For"}))
	assert.Equal(t, Completed, EffectiveStatus(models.TaskRecord{Status: "Done"}))
	assert.Equal(t, NotStarted, EffectiveStatus(models.TaskRecord{}))
}

func TestDisplayLabel(t *testing.T) {
	c := NewCatalog([]string{"TODO", "In Progress", "Hold by Client", "Completed"})

	tests := []struct {
		name string
		task models.TaskRecord
		want string
	}{
		{
			name: "raw label matches catalog entry after normalization",
			task: models.TaskRecord{Status: "on_hold_by_client", RawStatusLabel: "hold-by-client"},
			want: "Hold by Client",
		},
		{
			name: "custom raw label kept verbatim",
			task: models.TaskRecord{Status: "in_progress", RawStatusLabel: "Awaiting Legal"},
			want: "Awaiting Legal",
		},
		{
			name: "no raw label uses catalog text for status",
			task: models.TaskRecord{Status: "completed"},
			want: "Completed",
		},
		{
			name: "status missing from catalog uses built-in title",
			task: models.TaskRecord{Status: "need_help"},
			want: "Need Help",
		},
		{
			name: "empty record",
			task: models.TaskRecord{},
			want: "TODO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayLabel(tt.task, c))
		})
	}
}

func TestLabelMemory(t *testing.T) {
	m := NewLabelMemory(time.UTC)
	due := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	m.Remember("Fix Bug", due, "Awaiting Legal")
	got, ok := m.Recall(" fix bug", due.Add(3*time.Hour))
	require.True(t, ok)
	assert.Equal(t, "Awaiting Legal", got)

	_, ok = m.Recall("Fix Bug", due.AddDate(0, 0, 1))
	assert.False(t, ok)

	m.Forget("FIX BUG", due)
	assert.Equal(t, 0, m.Len())
}

func TestResolver_RecallsAcrossZones(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	r := NewResolver(nil, NewLabelMemory(ny))

	picked := models.TaskRecord{Title: "Fix Bug", DueDate: models.NewInstant(time.Date(2024, 3, 5, 0, 0, 0, 0, ny))}
	r.Remember(picked, "Blocked by legal")

	stored := models.TaskRecord{Title: "Fix Bug", DueDate: models.NewInstant(time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC))}
	assert.Equal(t, "Blocked by legal", r.DisplayLabel(stored))

	nextDay := models.TaskRecord{Title: "Fix Bug", DueDate: models.NewInstant(time.Date(2024, 3, 6, 6, 0, 0, 0, time.UTC))}
	assert.Equal(t, "TODO", r.DisplayLabel(nextDay))
}

func TestResolver_UsesMemoryWhenRecordHasNoLabel(t *testing.T) {
	r := NewResolver(nil, nil)
	due := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	task := models.TaskRecord{Title: "Fix Bug", DueDate: models.NewInstant(due), Status: "in_progress"}

	assert.Equal(t, "In Progress", r.DisplayLabel(task))

	r.Remember(task, "Awaiting Legal")
	assert.Equal(t, "Awaiting Legal", r.DisplayLabel(task))
	assert.Equal(t, InProgress, r.Status(task), "stored status still drives counting")

	task.RawStatusLabel = "stuck"
	assert.Equal(t, "Stuck", r.DisplayLabel(task))
}

func TestResolver_StatusFromMemoryWhenNothingStored(t *testing.T) {
	r := NewResolver(nil, nil)
	due := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	task := models.TaskRecord{Title: "Fix Bug", DueDate: models.NewInstant(due)}

	r.Remember(task, "Need Help")
	assert.Equal(t, NeedHelp, r.Status(task))
}

func TestResolver_FollowsCatalogSwaps(t *testing.T) {
	holder := NewCatalogHolder(nil)
	r := NewResolver(holder, nil)
	task := models.TaskRecord{Status: "completed"}

	assert.Equal(t, "Completed", r.DisplayLabel(task))
	holder.Replace([]string{"Open", "Done"})
	assert.Equal(t, "Done", r.DisplayLabel(task))
	assert.Equal(t, []string{"Open", "Done"}, r.Options())
}
