package dominant

import (
	"testing"
	"time"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/calendar"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
	"github.com/phukemrunal322-hue/cosmos-sub003/models"
	"github.com/stretchr/testify/assert"
)

func TestMeeting(t *testing.T) {
	tests := []struct {
		name     string
		input    []status.MeetingStatus
		expected status.MeetingStatus
	}{
		{"empty", nil, status.MeetingStatusNone},
		{"single", []status.MeetingStatus{status.MeetingScheduled}, status.MeetingScheduled},
		{"completed beats scheduled", []status.MeetingStatus{status.MeetingCompleted, status.MeetingScheduled}, status.MeetingCompleted},
		{"cancelled beats in progress", []status.MeetingStatus{status.MeetingInProgress, status.MeetingCancelled}, status.MeetingCancelled},
		{"unknown ignored", []status.MeetingStatus{"bogus", status.MeetingScheduled}, status.MeetingScheduled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Meeting(tt.input))
		})
	}
}

func TestTask(t *testing.T) {
	_, ok := Task(nil)
	assert.False(t, ok)

	got, ok := Task([]status.CanonicalStatus{status.Completed, status.InProgress, status.NotStarted})
	assert.True(t, ok)
	assert.Equal(t, status.InProgress, got)

	got, _ = Task([]status.CanonicalStatus{status.Stuck, status.Canceled, status.NeedHelp})
	assert.Equal(t, status.Canceled, got)

	got, _ = Task([]status.CanonicalStatus{status.WaitingForClient, status.OnHoldByClient})
	assert.Equal(t, status.OnHoldByClient, got)
}

func TestTaskOrderIndependent(t *testing.T) {
	all := status.All()
	reversed := make([]status.CanonicalStatus, len(all))
	for i, s := range all {
		reversed[len(all)-1-i] = s
	}
	a, _ := Task(all)
	b, _ := Task(reversed)
	assert.Equal(t, a, b)
	assert.Equal(t, status.Canceled, a)
}

func TestMeetingShade(t *testing.T) {
	shade := MeetingShade([]status.MeetingStatus{status.MeetingCompleted, status.MeetingScheduled})
	assert.Equal(t, MeetingColor(status.MeetingCompleted), shade.Color)
	assert.Equal(t, "Completed", shade.Label)
	assert.False(t, shade.None)

	shade = MeetingShade([]status.MeetingStatus{status.MeetingCancelled, status.MeetingInProgress})
	assert.Equal(t, MeetingColor(status.MeetingCancelled), shade.Color)

	assert.Equal(t, NoShade, MeetingShade(nil))
}

func TestTaskShade(t *testing.T) {
	assert.Equal(t, NoShade, TaskShade(nil))
	shade := TaskShade([]status.CanonicalStatus{status.NotStarted, status.Stuck})
	assert.Equal(t, TaskColor(status.Stuck), shade.Color)
	assert.Equal(t, "Stuck", shade.Label)
}

func TestDayShade(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	tasks := []models.TaskRecord{
		{Title: "a", DueDate: models.NewInstant(day), Status: "stuck"},
	}
	meetings := []models.MeetingRecord{
		{Title: "sync", Date: models.NewInstant(day.Add(10 * time.Hour)), Status: "Completed"},
	}

	t.Run("meetings first", func(t *testing.T) {
		cd := calendar.Day(day, tasks, meetings)
		assert.Equal(t, MeetingColor(status.MeetingCompleted), DayShade(cd).Color)
	})

	t.Run("falls back to tasks", func(t *testing.T) {
		cd := calendar.Day(day, tasks, nil)
		assert.Equal(t, TaskColor(status.Stuck), DayShade(cd).Color)
	})

	t.Run("empty day", func(t *testing.T) {
		cd := calendar.Day(day.AddDate(0, 0, 3), tasks, meetings)
		assert.True(t, DayShade(cd).None)
		assert.Equal(t, NoneColor, DayShade(cd).Color)
	})
}

func TestColorsCoverEveryStatus(t *testing.T) {
	for _, s := range status.All() {
		assert.NotEqual(t, NoneColor, TaskColor(s), s)
		assert.NotZero(t, TaskRank(s), s)
	}
	for _, s := range status.AllMeeting() {
		assert.NotEqual(t, NoneColor, MeetingColor(s), s)
		assert.NotZero(t, MeetingRank(s), s)
	}
}

func TestMeetingRank_InProgressOutranksCompleted(t *testing.T) {
	assert.Greater(t, MeetingRank(status.MeetingCancelled), MeetingRank(status.MeetingInProgress))
	assert.Greater(t, MeetingRank(status.MeetingInProgress), MeetingRank(status.MeetingCompleted))
	assert.Greater(t, MeetingRank(status.MeetingCompleted), MeetingRank(status.MeetingScheduled))
}
