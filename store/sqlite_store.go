package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/phukemrunal322-hue/cosmos-sub003/models"
	_ "modernc.org/sqlite"
)

// SQLiteRecordStore keeps records in a SQLite database.
type SQLiteRecordStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteRecordStore opens (creating if needed) the database at path.
// ":memory:" opens a private in-memory database.
func NewSQLiteRecordStore(path string) (*SQLiteRecordStore, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create records directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps ":memory:" databases shared across queries.
	db.SetMaxOpenConns(1)

	s := &SQLiteRecordStore{db: db, path: path}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteRecordStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		project_id TEXT,
		assignees TEXT,                     -- JSON array
		due_date TEXT,                      -- RFC3339, empty when unset
		start_date TEXT,
		progress REAL NOT NULL DEFAULT 0,
		status TEXT,
		raw_status_label TEXT,
		is_recurring INTEGER NOT NULL DEFAULT 0,
		recurring_end_date TEXT,
		recurring_pattern TEXT
	);

	CREATE TABLE IF NOT EXISTS meetings (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		date TEXT,
		status TEXT,
		participants TEXT                   -- JSON array
	);

	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		client TEXT,
		progress REAL NOT NULL DEFAULT 0,
		start_date TEXT,
		end_date TEXT,
		status TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date);
	CREATE INDEX IF NOT EXISTS idx_meetings_date ON meetings(date);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Path returns the database location.
func (s *SQLiteRecordStore) Path() string { return s.path }

// Replace swaps every stored record for set in one transaction.
func (s *SQLiteRecordStore) Replace(ctx context.Context, set models.RecordSet) error {
	AssignIDs(&set)
	if err := models.ValidateStruct(set); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecords, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"tasks", "meetings", "projects"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for i, t := range set.Tasks {
		assignees, err := json.Marshal(t.Assignees)
		if err != nil {
			return fmt.Errorf("marshal assignees: %w", err)
		}
		var recurringEnd string
		if t.HasRecurringEnd() {
			recurringEnd = formatTime(t.RecurringEndDate.Time)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO tasks (id, position, title, project_id, assignees, due_date, start_date,
			                   progress, status, raw_status_label, is_recurring, recurring_end_date, recurring_pattern)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, t.ID, i, t.Title, t.ProjectID, string(assignees), formatTime(t.DueDate.Time), formatTime(t.StartDate.Time),
			t.Progress.Float(), t.Status, t.RawStatusLabel, t.IsRecurring, recurringEnd, string(t.RecurringPattern))
		if err != nil {
			return fmt.Errorf("insert task %q: %w", t.Title, err)
		}
	}

	for i, m := range set.Meetings {
		participants, err := json.Marshal(m.Participants)
		if err != nil {
			return fmt.Errorf("marshal participants: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO meetings (id, position, title, date, status, participants)
			VALUES (?, ?, ?, ?, ?, ?)
		`, m.ID, i, m.Title, formatTime(m.Date.Time), m.Status, string(participants))
		if err != nil {
			return fmt.Errorf("insert meeting %q: %w", m.Title, err)
		}
	}

	for i, p := range set.Projects {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projects (id, position, name, client, progress, start_date, end_date, status)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID, i, p.Name, p.Client, p.Progress.Float(), formatTime(p.StartDate.Time), formatTime(p.EndDate.Time), p.Status)
		if err != nil {
			return fmt.Errorf("insert project %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Tasks returns every task in import order.
func (s *SQLiteRecordStore) Tasks(ctx context.Context) ([]models.TaskRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, project_id, assignees, due_date, start_date, progress,
		       status, raw_status_label, is_recurring, recurring_end_date, recurring_pattern
		FROM tasks ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []models.TaskRecord
	for rows.Next() {
		var t models.TaskRecord
		var projectID, assignees, due, start, st, raw, recurringEnd, pattern sql.NullString
		var progress float64
		if err := rows.Scan(&t.ID, &t.Title, &projectID, &assignees, &due, &start, &progress,
			&st, &raw, &t.IsRecurring, &recurringEnd, &pattern); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.ProjectID = projectID.String
		t.Status = st.String
		t.RawStatusLabel = raw.String
		t.RecurringPattern = models.RecurringPattern(pattern.String)
		t.Progress = models.Progress(progress)
		t.DueDate = models.NewInstant(parseTime(due.String))
		t.StartDate = models.NewInstant(parseTime(start.String))
		if end := parseTime(recurringEnd.String); !end.IsZero() {
			t.RecurringEndDate = models.At(end)
		}
		if assignees.Valid && assignees.String != "" {
			if err := json.Unmarshal([]byte(assignees.String), &t.Assignees); err != nil {
				return nil, fmt.Errorf("decode assignees for %q: %w", t.Title, err)
			}
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Meetings returns every meeting in import order.
func (s *SQLiteRecordStore) Meetings(ctx context.Context) ([]models.MeetingRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, date, status, participants FROM meetings ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query meetings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var meetings []models.MeetingRecord
	for rows.Next() {
		var m models.MeetingRecord
		var date, st, participants sql.NullString
		if err := rows.Scan(&m.ID, &m.Title, &date, &st, &participants); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		m.Date = models.NewInstant(parseTime(date.String))
		m.Status = st.String
		if participants.Valid && participants.String != "" {
			if err := json.Unmarshal([]byte(participants.String), &m.Participants); err != nil {
				return nil, fmt.Errorf("decode participants for %q: %w", m.Title, err)
			}
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// Projects returns every project in import order.
func (s *SQLiteRecordStore) Projects(ctx context.Context) ([]models.ProjectRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, client, progress, start_date, end_date, status FROM projects ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []models.ProjectRecord
	for rows.Next() {
		var p models.ProjectRecord
		var client, start, end, st sql.NullString
		var progress float64
		if err := rows.Scan(&p.ID, &p.Name, &client, &progress, &start, &end, &st); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		p.Client = client.String
		p.Progress = models.Progress(progress)
		p.StartDate = models.NewInstant(parseTime(start.String))
		p.EndDate = models.NewInstant(parseTime(end.String))
		p.Status = st.String
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Close closes the database.
func (s *SQLiteRecordStore) Close() error {
	return s.db.Close()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
