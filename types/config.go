/*
Copyright © 2026 The Cosmos Authors
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose  bool           `mapstructure:"verbose"`
	Config   string         `mapstructure:"config"`
	Status   StatusConfig   `mapstructure:"status"`
	Calendar CalendarConfig `mapstructure:"calendar" validate:"required"`
	Records  RecordsConfig  `mapstructure:"records" validate:"required"`
}

// StatusConfig holds the administrator-managed status labels
type StatusConfig struct {
	// Options are offered in menu order. Empty means the built-in defaults.
	Options []string `mapstructure:"options" validate:"omitempty,dive,required"`
}

// CalendarConfig holds month grid settings
type CalendarConfig struct {
	Layout    string `mapstructure:"layout" validate:"required,oneof=padded week"`
	WeekStart string `mapstructure:"weekStart" validate:"required,oneof=sunday monday tuesday wednesday thursday friday saturday"`
}

// RecordsConfig holds record source configuration
type RecordsConfig struct {
	Path   string `mapstructure:"path" validate:"required"`
	Driver string `mapstructure:"driver" validate:"required,oneof=file sqlite"`
}
