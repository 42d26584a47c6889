package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/phukemrunal322-hue/cosmos-sub003/models"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// FileRecordStore reads a record set from a single JSON, YAML or TOML file.
// The format is chosen by extension. A missing file is an empty set.
type FileRecordStore struct {
	fs     afero.Fs
	path   string
	format string

	mu     sync.Mutex
	loaded bool
	set    models.RecordSet
}

// NewFileRecordStore returns a store over path on fsys. A nil fsys uses the
// OS filesystem.
func NewFileRecordStore(fsys afero.Fs, path string) (*FileRecordStore, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	return &FileRecordStore{fs: fsys, path: path, format: format}, nil
}

// FormatFor maps a file extension to a records format.
func FormatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q (want .json, .yaml, .yml or .toml)", ErrUnsupportedFormat, path)
	}
}

// Path returns the file the store reads.
func (s *FileRecordStore) Path() string { return s.path }

// Load reads and validates the file. A successful read is cached until Replace.
func (s *FileRecordStore) Load(ctx context.Context) (models.RecordSet, error) {
	if err := ctx.Err(); err != nil {
		return models.RecordSet{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.set, nil
	}
	set, err := s.read()
	if err != nil {
		return models.RecordSet{}, err
	}
	s.set, s.loaded = set, true
	return set, nil
}

func (s *FileRecordStore) read() (models.RecordSet, error) {
	var set models.RecordSet

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return set, nil
		}
		return set, fmt.Errorf("read records file %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return set, nil
	}

	if err := decodeRecords(s.format, data, &set); err != nil {
		return set, fmt.Errorf("decode %s: %w", s.path, err)
	}
	AssignIDs(&set)
	if err := models.ValidateStruct(set); err != nil {
		return set, fmt.Errorf("%w: %v", ErrInvalidRecords, err)
	}
	return set, nil
}

func decodeRecords(format string, data []byte, set *models.RecordSet) error {
	switch format {
	case formatJSON:
		return json.Unmarshal(data, set)
	case formatYAML:
		return yaml.Unmarshal(data, set)
	case formatTOML:
		// TOML datetimes decode to time values; bridging through JSON lets
		// Instant apply the same parsing rules as the other formats.
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return err
		}
		bridged, err := json.Marshal(raw)
		if err != nil {
			return err
		}
		return json.Unmarshal(bridged, set)
	default:
		return ErrUnsupportedFormat
	}
}

// Tasks returns the file's tasks.
func (s *FileRecordStore) Tasks(ctx context.Context) ([]models.TaskRecord, error) {
	set, err := s.Load(ctx)
	return set.Tasks, err
}

// Meetings returns the file's meetings.
func (s *FileRecordStore) Meetings(ctx context.Context) ([]models.MeetingRecord, error) {
	set, err := s.Load(ctx)
	return set.Meetings, err
}

// Projects returns the file's projects.
func (s *FileRecordStore) Projects(ctx context.Context) ([]models.ProjectRecord, error) {
	set, err := s.Load(ctx)
	return set.Projects, err
}

// Replace writes set to the file in the store's format.
func (s *FileRecordStore) Replace(ctx context.Context, set models.RecordSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodeRecords(s.format, set)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("write records file %s: %w", s.path, err)
	}
	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()
	return nil
}

func encodeRecords(format string, set models.RecordSet) ([]byte, error) {
	switch format {
	case formatJSON:
		return json.MarshalIndent(set, "", "  ")
	case formatYAML:
		return yaml.Marshal(set)
	case formatTOML:
		bridged, err := json.Marshal(set)
		if err != nil {
			return nil, err
		}
		var raw map[string]any
		if err := json.Unmarshal(bridged, &raw); err != nil {
			return nil, err
		}
		return toml.Marshal(dropNulls(raw))
	default:
		return nil, ErrUnsupportedFormat
	}
}

// dropNulls removes nil values, which TOML cannot represent.
func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if val == nil {
				delete(t, k)
				continue
			}
			t[k] = dropNulls(val)
		}
		return t
	case []any:
		for i := range t {
			t[i] = dropNulls(t[i])
		}
		return t
	default:
		return v
	}
}

// Close is a no-op for files.
func (s *FileRecordStore) Close() error { return nil }

// AssignIDs gives every record without an ID a random one.
func AssignIDs(set *models.RecordSet) {
	for i := range set.Tasks {
		if set.Tasks[i].ID == "" {
			set.Tasks[i].ID = uuid.NewString()
		}
	}
	for i := range set.Meetings {
		if set.Meetings[i].ID == "" {
			set.Meetings[i].ID = uuid.NewString()
		}
	}
	for i := range set.Projects {
		if set.Projects[i].ID == "" {
			set.Projects[i].ID = uuid.NewString()
		}
	}
}
