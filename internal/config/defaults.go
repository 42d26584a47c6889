// Package config provides centralized configuration for cosmos.
// All default values are defined here so there is a single source of truth.
package config

import "github.com/phukemrunal322-hue/cosmos-sub003/internal/status"

// Configuration keys.
const (
	KeyStatusOptions     = "status.options"
	KeyCalendarLayout    = "calendar.layout"
	KeyCalendarWeekStart = "calendar.weekStart"
	KeyRecordsPath       = "records.path"
	KeyRecordsDriver     = "records.driver"
)

// Record drivers
const (
	// DriverFile reads records from a JSON or YAML file.
	DriverFile = "file"

	// DriverSQLite reads records from a SQLite database.
	DriverSQLite = "sqlite"
)

const (
	// DefaultCalendarLayout is the grid layout used when none is configured.
	DefaultCalendarLayout = "padded"

	// DefaultWeekStart is the first column of the month grid.
	DefaultWeekStart = "monday"

	// DefaultRecordsPath is relative to the working directory.
	DefaultRecordsPath = ".cosmos/records.yaml"

	// DefaultRecordsDriver reads records from a plain file.
	DefaultRecordsDriver = DriverFile
)

// DefaultStatusOptions returns the labels offered before an administrator
// configures any.
func DefaultStatusOptions() []string {
	return status.DefaultLabels()
}
