// Package store loads task, meeting and project records for the engine.
//
// The engine never talks to a store directly: commands load records through
// a RecordSource and hand plain slices to the engine packages.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/phukemrunal322-hue/cosmos-sub003/models"
)

var (
	// ErrUnsupportedFormat is returned for record files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported records format")

	// ErrInvalidRecords wraps validation failures on loaded records.
	ErrInvalidRecords = errors.New("invalid records")
)

// RecordSource is a read-only view of the record store.
type RecordSource interface {
	// Tasks returns every task record in source order.
	Tasks(ctx context.Context) ([]models.TaskRecord, error)

	// Meetings returns every meeting record in source order.
	Meetings(ctx context.Context) ([]models.MeetingRecord, error)

	// Projects returns every project record in source order.
	Projects(ctx context.Context) ([]models.ProjectRecord, error)

	// Close releases any resources held by the source.
	Close() error
}

// RecordSink replaces the contents of a store with a record set.
type RecordSink interface {
	Replace(ctx context.Context, set models.RecordSet) error
}

// LoadAll reads every record kind from src.
func LoadAll(ctx context.Context, src RecordSource) (models.RecordSet, error) {
	var set models.RecordSet
	var err error
	if set.Tasks, err = src.Tasks(ctx); err != nil {
		return set, fmt.Errorf("load tasks: %w", err)
	}
	if set.Meetings, err = src.Meetings(ctx); err != nil {
		return set, fmt.Errorf("load meetings: %w", err)
	}
	if set.Projects, err = src.Projects(ctx); err != nil {
		return set, fmt.Errorf("load projects: %w", err)
	}
	return set, nil
}

// Open returns the source for driver ("file" or "sqlite") at path.
func Open(driver, path string) (RecordSource, error) {
	switch driver {
	case "", DriverFile:
		return NewFileRecordStore(nil, path)
	case DriverSQLite:
		return NewSQLiteRecordStore(path)
	default:
		return nil, fmt.Errorf("unknown records driver %q", driver)
	}
}

// Driver names accepted by Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)
