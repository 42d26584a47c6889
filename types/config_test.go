package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func validConfig() AppConfig {
	return AppConfig{
		Status:   StatusConfig{Options: []string{"TODO", "Done"}},
		Calendar: CalendarConfig{Layout: "padded", WeekStart: "monday"},
		Records:  RecordsConfig{Path: ".cosmos/records.yaml", Driver: "file"},
	}
}

func TestAppConfig_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"valid", func(*AppConfig) {}, false},
		{"default options", func(c *AppConfig) { c.Status.Options = nil }, false},
		{"blank option", func(c *AppConfig) { c.Status.Options = []string{"TODO", ""} }, true},
		{"week layout", func(c *AppConfig) { c.Calendar.Layout = "week" }, false},
		{"bad layout", func(c *AppConfig) { c.Calendar.Layout = "spiral" }, true},
		{"sunday start", func(c *AppConfig) { c.Calendar.WeekStart = "sunday" }, false},
		{"bad week start", func(c *AppConfig) { c.Calendar.WeekStart = "funday" }, true},
		{"sqlite", func(c *AppConfig) { c.Records.Driver = "sqlite" }, false},
		{"bad driver", func(c *AppConfig) { c.Records.Driver = "postgres" }, true},
		{"no path", func(c *AppConfig) { c.Records.Path = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := validate.Struct(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommandError_Details(t *testing.T) {
	err := NewCommandError(ErrCodeInvalidInput, "bad month", map[string]interface{}{"value": "13"})
	assert.Equal(t, "INVALID_INPUT: bad month", err.Error())
	assert.Equal(t, "13", err.Details["value"])
}
