package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
	"github.com/phukemrunal322-hue/cosmos-sub003/internal/status"
)

// LabelEntry is one remembered raw status label.
type LabelEntry struct {
	Title string    `json:"title"`
	Due   time.Time `json:"due"`
	Label string    `json:"label"`
}

// LabelStore persists raw status labels per task occurrence on disk, one
// small file per occurrence. Occurrence days are read in the store's location.
type LabelStore struct {
	d   *diskv.Diskv
	loc *time.Location
}

// NewLabelStore returns a store rooted at basePath keyed on calendar days in
// loc (time.Local when nil).
func NewLabelStore(basePath string, loc *time.Location) *LabelStore {
	if loc == nil {
		loc = time.Local
	}
	return &LabelStore{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    labelPathTransform,
			CacheSizeMax: 256 * 1024,
		}),
		loc: loc,
	}
}

// labelKey hashes the occurrence key so titles never reach the filesystem.
func (s *LabelStore) labelKey(title string, due time.Time) string {
	sum := sha256.Sum256([]byte(status.RawStatusKey(title, due, s.loc)))
	return hex.EncodeToString(sum[:12])
}

// labelPathTransform fans keys out over two-character directories.
func labelPathTransform(key string) []string {
	if len(key) < 2 {
		return []string{}
	}
	return []string{key[:2]}
}

// Put remembers label for the occurrence. An empty label deletes it.
func (s *LabelStore) Put(title string, due time.Time, label string) error {
	label = strings.TrimSpace(label)
	key := s.labelKey(title, due)
	if label == "" {
		return s.Delete(title, due)
	}
	data, err := json.Marshal(LabelEntry{Title: title, Due: due, Label: label})
	if err != nil {
		return fmt.Errorf("marshal label: %w", err)
	}
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("write label: %w", err)
	}
	return nil
}

// Get returns the remembered label for the occurrence.
func (s *LabelStore) Get(title string, due time.Time) (string, bool) {
	e, err := s.read(s.labelKey(title, due))
	if err != nil {
		return "", false
	}
	return e.Label, true
}

// Delete forgets the occurrence. Forgetting an unknown occurrence is not an error.
func (s *LabelStore) Delete(title string, due time.Time) error {
	key := s.labelKey(title, due)
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("erase label: %w", err)
	}
	return nil
}

// Entries returns every remembered label. Unreadable entries are skipped.
func (s *LabelStore) Entries(ctx context.Context) []LabelEntry {
	var out []LabelEntry
	for key := range s.d.Keys(ctx.Done()) {
		e, err := s.read(key)
		if err != nil {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Restore loads every remembered label into mem and returns how many were loaded.
func (s *LabelStore) Restore(ctx context.Context, mem *status.LabelMemory) int {
	n := 0
	for _, e := range s.Entries(ctx) {
		mem.Remember(e.Title, e.Due, e.Label)
		n++
	}
	return n
}

func (s *LabelStore) read(key string) (LabelEntry, error) {
	var e LabelEntry
	data, err := s.d.Read(key)
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(data, &e); err != nil {
		return e, err
	}
	return e, nil
}
