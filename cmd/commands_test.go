package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/config"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/summary"
	"github.com/phukemrunal322-hue/cosmos-sub003/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, output string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(output), &v), output)
	return v
}

func TestStatusCanonicalizeCmd(t *testing.T) {
	setupCommandTest(t)

	output, err := executeCommand("--json", "status", "canonicalize", "To-Do", "Hold by Client", "no idea")
	require.NoError(t, err)

	results := decode[[]canonicalResult](t, output)
	require.Len(t, results, 3)
	assert.Equal(t, status.NotStarted, results[0].Status)
	assert.Equal(t, "todo", results[0].Normalized)
	assert.True(t, results[0].Known)
	assert.Equal(t, status.OnHoldByClient, results[1].Status)
	assert.Equal(t, status.NotStarted, results[2].Status)
	assert.False(t, results[2].Known)
}

func TestStatusCanonicalizeCmd_Table(t *testing.T) {
	setupCommandTest(t)

	output, err := executeCommand("status", "canonicalize", "blocked")
	require.NoError(t, err)
	assert.Contains(t, output, "Label")
	assert.Contains(t, output, "Stuck")
	assert.Contains(t, output, "stuck")
}

func TestStatusOptionsCmd_Defaults(t *testing.T) {
	setupCommandTest(t)

	output, err := executeCommand("--json", "status", "options")
	require.NoError(t, err)

	opts := decode[[]statusOption](t, output)
	require.Len(t, opts, len(status.DefaultLabels()))
	assert.Equal(t, "TODO", opts[0].Label)
	assert.Equal(t, status.NotStarted, opts[0].Status)
	assert.True(t, opts[0].Default)
}

func TestStatusSetOptionsCmd(t *testing.T) {
	dir := setupCommandTest(t)
	cfgPath := filepath.Join(dir, "cosmos.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("calendar:\n  layout: week\n"), 0o644))

	_, err := executeCommand("--config", cfgPath, "status", "set-options", "To Do", "Blocked", "Stuck", "Done")
	require.NoError(t, err)

	labels, err := config.ReadStatusOptions(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"To Do", "Blocked", "Stuck", "Done"}, labels)

	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "layout: week")

	output, err := executeCommand("--config", cfgPath, "--json", "status", "options")
	require.NoError(t, err)
	opts := decode[[]statusOption](t, output)
	require.Len(t, opts, 4)
	assert.True(t, opts[1].Default)
	assert.False(t, opts[2].Default, "Blocked is listed first for stuck")
}

func TestStatusKeyCmd(t *testing.T) {
	setupCommandTest(t)

	output, err := executeCommand("--json", "status", "key", "  Weekly   Report ", "2024-03-05")
	require.NoError(t, err)
	got := decode[map[string]string](t, output)
	assert.Contains(t, got["key"], "weekly report|")
}

func TestStatusLabelCmd_RememberedLabelIsUsed(t *testing.T) {
	dir := setupCommandTest(t)
	path := writeRecords(t, dir)

	_, err := executeCommand("--records", path, "status", "label", "Send invoice", "2024-03-01", "Blocked")
	require.NoError(t, err)

	output, err := executeCommand("--records", path, "status", "label", "send invoice", "2024-03-01")
	require.NoError(t, err)
	assert.Contains(t, output, "Blocked")

	output, err = executeCommand("--records", path, "--json", "status", "list", "--status", "blocked")
	require.NoError(t, err)
	rows := decode[[]taskRow](t, output)
	titles := make([]string, 0, len(rows))
	for _, r := range rows {
		titles = append(titles, r.Title)
	}
	assert.ElementsMatch(t, []string{"Fix login", "Send invoice"}, titles)

	_, err = executeCommand("--records", path, "status", "label", "Send invoice", "2024-03-01", "--forget")
	require.NoError(t, err)
	output, err = executeCommand("--records", path, "--json", "status", "list", "--status", "stuck")
	require.NoError(t, err)
	assert.Len(t, decode[[]taskRow](t, output), 1)
}

func TestStatusLabelCmd_LocalClockWithUTCRecords(t *testing.T) {
	dir := setupCommandTest(t)
	path := writeRecords(t, dir)
	est := time.FixedZone("EST", -5*3600)
	now = func() time.Time { return fixedNow.In(est) }

	// Send invoice is stored as 2024-03-01T10:00:00Z, 05:00 on the 1st in EST
	_, err := executeCommand("--records", path, "status", "label", "Send invoice", "2024-03-01", "Blocked")
	require.NoError(t, err)

	output, err := executeCommand("--records", path, "--json", "status", "list", "--status", "blocked")
	require.NoError(t, err)
	rows := decode[[]taskRow](t, output)
	var found *taskRow
	for i := range rows {
		if rows[i].Title == "Send invoice" {
			found = &rows[i]
		}
	}
	require.NotNil(t, found, "remembered label applies to the UTC-stamped record")
	assert.Equal(t, "Blocked", found.Label)
	assert.Equal(t, status.Stuck, found.Status)

	output, err = executeCommand("--json", "status", "key", "Send invoice", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "send invoice|2024-03-01", decode[map[string]string](t, output)["key"])
}

func TestStatusListCmd(t *testing.T) {
	dir := setupCommandTest(t)
	path := writeRecords(t, dir)

	output, err := executeCommand("--records", path, "--json", "status", "list")
	require.NoError(t, err)
	rows := decode[[]taskRow](t, output)
	require.Len(t, rows, 4)
	assert.Equal(t, "Weekly report", rows[0].Title)
	assert.Equal(t, "Waiting on client", rows[0].Label)
	assert.Equal(t, status.WaitingForClient, rows[0].Status)
	assert.Equal(t, 50, rows[0].Percent)
	assert.Equal(t, "Stuck", rows[1].Label)
	assert.Equal(t, 20, rows[1].Percent)
}

func TestProgressCmd(t *testing.T) {
	setupCommandTest(t)

	output, err := executeCommand("--json", "progress", "0.4", "40", "85%", "1", "150", "0")
	require.NoError(t, err)

	results := decode[[]progressResult](t, output)
	require.Len(t, results, 6)
	want := []int{40, 40, 85, 100, 100, 0}
	for i, r := range results {
		assert.Equal(t, want[i], r.Percent, r.Input)
	}
	assert.True(t, results[3].Complete)
	assert.False(t, results[0].Complete)
}

func TestAgendaCmd(t *testing.T) {
	dir := setupCommandTest(t)
	path := writeRecords(t, dir)

	output, err := executeCommand("--records", path, "--json", "agenda", "2024-03-06")
	require.NoError(t, err)

	got := decode[agendaOutput](t, output)
	assert.Equal(t, "2024-03-06", got.Date)
	titles := make([]string, 0, len(got.Tasks))
	for _, l := range got.Tasks {
		titles = append(titles, l.Title)
	}
	assert.Equal(t, []string{"Weekly report", "Fix login", "Archive"}, titles)
	require.Len(t, got.Meetings, 1)
	assert.Equal(t, status.MeetingScheduled, got.Meetings[0].Status)
	assert.Equal(t, "Scheduled", got.Shade.Label)
}

func TestAgendaCmd_RecurringWindowEnds(t *testing.T) {
	dir := setupCommandTest(t)
	path := writeRecords(t, dir)

	output, err := executeCommand("--records", path, "--json", "agenda", "2024-03-09")
	require.NoError(t, err)
	got := decode[agendaOutput](t, output)
	assert.Empty(t, got.Tasks)
	assert.True(t, got.Shade.None)
}

func TestAgendaCmd_Text(t *testing.T) {
	dir := setupCommandTest(t)
	path := writeRecords(t, dir)

	output, err := executeCommand("--records", path, "agenda")
	require.NoError(t, err)
	assert.Contains(t, output, "Wednesday, 06 March 2024")
	assert.Contains(t, output, "Kickoff")
	assert.Contains(t, output, "Fix login")
}

func TestCalendarCmd(t *testing.T) {
	dir := setupCommandTest(t)
	path := writeRecords(t, dir)

	output, err := executeCommand("--records", path, "--json", "calendar", "2024-03")
	require.NoError(t, err)

	got := decode[calendarOutput](t, output)
	assert.Equal(t, "2024-03", got.Month)
	assert.Equal(t, "padded", got.Layout)
	assert.Equal(t, "monday", got.WeekStart)
	require.Len(t, got.Cells, 35)
	for i := 0; i < 4; i++ {
		assert.True(t, got.Cells[i].Blank, "cell %d", i)
	}
	assert.Equal(t, "2024-03-01", got.Cells[4].Date)

	wed := got.Cells[9]
	assert.Equal(t, "2024-03-06", wed.Date)
	assert.Equal(t, 3, wed.Tasks)
	assert.Equal(t, 1, wed.Meetings)
	assert.Equal(t, "Scheduled", wed.Shade.Label)

	assert.Equal(t, "Cancelled", got.Cells[15].Shade.Label)
	assert.Equal(t, "Waiting For Client", got.Cells[11].Shade.Label) // 2024-03-08
	assert.True(t, got.Cells[12].Shade.None)                         // 2024-03-09
}

func TestCalendarCmd_TaskShadingAndWeekLayout(t *testing.T) {
	dir := setupCommandTest(t)
	path := writeRecords(t, dir)

	output, err := executeCommand("--records", path, "--json", "calendar", "2024-03",
		"--kind", "tasks", "--layout", "week", "--week-start", "sunday")
	require.NoError(t, err)

	got := decode[calendarOutput](t, output)
	assert.Equal(t, "week", got.Layout)
	assert.Equal(t, "sunday", got.WeekStart)
	require.Len(t, got.Cells, 42)
	assert.Equal(t, "2024-02-25", got.Cells[0].Date)
	assert.False(t, got.Cells[0].InMonth)
	assert.Equal(t, "2024-03-06", got.Cells[10].Date)
	assert.Equal(t, "Stuck", got.Cells[10].Shade.Label)
}

func TestCalendarCmd_InvalidFlags(t *testing.T) {
	dir := setupCommandTest(t)
	path := writeRecords(t, dir)

	_, err := executeCommand("--records", path, "calendar", "--layout", "spiral")
	assert.Error(t, err)
	_, err = executeCommand("--records", path, "calendar", "--kind", "projects")
	assert.Error(t, err)
	_, err = executeCommand("--records", path, "calendar", "13/2024")
	assert.Error(t, err)
}

func TestSummaryCmd(t *testing.T) {
	dir := setupCommandTest(t)
	path := writeRecords(t, dir)

	output, err := executeCommand("--records", path, "--json", "summary")
	require.NoError(t, err)

	got := decode[summaryOutput](t, output)
	assert.Equal(t, 4, got.Tasks.Total)
	assert.Equal(t, 1, got.Tasks.Count(status.Stuck))
	assert.Equal(t, 1, got.Tasks.Count(status.WaitingForClient))
	assert.Equal(t, 1, got.Tasks.Overdue)
	assert.Equal(t, 3, got.Tasks.DueToday)
	assert.Equal(t, 42, got.Tasks.AverageProgress)
	assert.Equal(t, summary.ProjectSummary{Total: 2, Complete: 1, Active: 1, AveragePercentage: got.Projects.AveragePercentage}, got.Projects)
}

func TestSummaryCmd_MissingRecordsIsEmpty(t *testing.T) {
	dir := setupCommandTest(t)

	output, err := executeCommand("--records", filepath.Join(dir, "none.yaml"), "--json", "summary")
	require.NoError(t, err)
	got := decode[summaryOutput](t, output)
	assert.Zero(t, got.Tasks.Total)
	assert.Zero(t, got.Projects.Total)
}

func TestImportExportRoundTrip(t *testing.T) {
	dir := setupCommandTest(t)
	path := writeRecords(t, dir)
	db := filepath.Join(dir, "records.db")

	output, err := executeCommand("--json", "import", path, "--db", db)
	require.NoError(t, err)
	res := decode[transferResult](t, output)
	assert.Equal(t, 4, res.Tasks)
	assert.Equal(t, 2, res.Meetings)
	assert.Equal(t, 2, res.Projects)

	out := filepath.Join(dir, "backup.toml")
	_, err = executeCommand("--records", db, "--records-driver", "sqlite", "export", out)
	require.NoError(t, err)

	exported, err := store.NewFileRecordStore(nil, out)
	require.NoError(t, err)
	tasks, err := exported.Tasks(t.Context())
	require.NoError(t, err)
	require.Len(t, tasks, 4)
	assert.Equal(t, "Weekly report", tasks[0].Title)
	assert.True(t, tasks[0].IsRecurring)
	assert.Equal(t, "Waiting on client", tasks[0].RawStatusLabel)

	output, err = executeCommand("--records", out, "--json", "agenda", "2024-03-07")
	require.NoError(t, err)
	got := decode[agendaOutput](t, output)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, "Weekly report", got.Tasks[0].Title)
}

func TestImportCmd_RejectsUnknownFormat(t *testing.T) {
	dir := setupCommandTest(t)

	_, err := executeCommand("import", filepath.Join(dir, "records.csv"), "--db", filepath.Join(dir, "r.db"))
	assert.ErrorIs(t, err, store.ErrUnsupportedFormat)
}

func TestCrashesCmd(t *testing.T) {
	dir := setupCommandTest(t)
	path := writeRecords(t, dir)

	output, err := executeCommand("--records", path, "crashes")
	require.NoError(t, err)
	assert.Contains(t, output, "No crash logs found.")

	crashDir := filepath.Join(dir, "crash_logs")
	require.NoError(t, os.MkdirAll(crashDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(crashDir, "crash_20240306_120000.log"), []byte("panic"), 0o644))

	output, err = executeCommand("--records", path, "--json", "crashes")
	require.NoError(t, err)
	logs := decode[[]string](t, output)
	require.Len(t, logs, 1)
	assert.Contains(t, logs[0], "crash_20240306_120000.log")
}
