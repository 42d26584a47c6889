package config

import (
	"strings"
	"time"

	"github.com/phukemrunal322-hue/cosmos-sub003/internal/calendar"
	"github.com/spf13/viper"
)

// CalendarConfig holds month grid settings.
type CalendarConfig struct {
	Layout    calendar.Layout
	WeekStart time.Weekday
}

// DefaultCalendarConfig returns the default calendar configuration.
func DefaultCalendarConfig() CalendarConfig {
	return CalendarConfig{Layout: calendar.LayoutPadded, WeekStart: time.Monday}
}

// LoadCalendarConfig loads calendar configuration from Viper with defaults.
// Unparseable values fall back to the defaults.
func LoadCalendarConfig() CalendarConfig {
	cfg := DefaultCalendarConfig()

	if layout, err := calendar.ParseLayout(getStringWithDefault(KeyCalendarLayout, DefaultCalendarLayout)); err == nil {
		cfg.Layout = layout
	}
	if ws, err := calendar.ParseWeekday(getStringWithDefault(KeyCalendarWeekStart, DefaultWeekStart)); err == nil {
		cfg.WeekStart = ws
	}
	return cfg
}

// RecordsConfig says where records are read from.
type RecordsConfig struct {
	Driver string
	Path   string
}

// LoadRecordsConfig loads the record source settings from Viper with defaults.
func LoadRecordsConfig() RecordsConfig {
	driver := strings.ToLower(getStringWithDefault(KeyRecordsDriver, DefaultRecordsDriver))
	if driver != DriverSQLite {
		driver = DriverFile
	}
	return RecordsConfig{Driver: driver, Path: GetRecordsPath()}
}

// LoadStatusOptions returns the administrator's status labels from the global
// Viper instance, or the defaults when none are configured.
func LoadStatusOptions() []string {
	return statusOptionsFrom(viper.GetViper())
}

func statusOptionsFrom(v *viper.Viper) []string {
	if !v.IsSet(KeyStatusOptions) {
		return DefaultStatusOptions()
	}
	var labels []string
	for _, l := range v.GetStringSlice(KeyStatusOptions) {
		if l = strings.TrimSpace(l); l != "" {
			labels = append(labels, l)
		}
	}
	if len(labels) == 0 {
		return DefaultStatusOptions()
	}
	return labels
}

// Helper functions for Viper with defaults

func getStringWithDefault(key string, defaultVal string) string {
	if viper.IsSet(key) {
		if s := viper.GetString(key); s != "" {
			return s
		}
	}
	return defaultVal
}
