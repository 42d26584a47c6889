package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RecurringPattern is the repeat cadence captured on a task.
// It is stored but not consulted when deciding which days a task is active.
type RecurringPattern string

const (
	PatternNone    RecurringPattern = ""
	PatternDaily   RecurringPattern = "daily"
	PatternWeekly  RecurringPattern = "weekly"
	PatternMonthly RecurringPattern = "monthly"
	PatternYearly  RecurringPattern = "yearly"
)

// TaskRecord is a task as supplied by the document store.
// Title doubles as a secondary key; ID is not guaranteed stable across edits.
type TaskRecord struct {
	ID               string           `json:"id,omitempty" yaml:"id,omitempty"`
	Title            string           `json:"title" yaml:"title" validate:"required"`
	ProjectID        string           `json:"projectId,omitempty" yaml:"projectId,omitempty"`
	Assignees        []string         `json:"assignees,omitempty" yaml:"assignees,omitempty"`
	DueDate          Instant          `json:"dueDate" yaml:"dueDate"`
	StartDate        Instant          `json:"startDate" yaml:"startDate"`
	Progress         Progress         `json:"progress" yaml:"progress"`
	Status           string           `json:"status,omitempty" yaml:"status,omitempty"`
	RawStatusLabel   string           `json:"rawStatusLabel,omitempty" yaml:"rawStatusLabel,omitempty"`
	IsRecurring      bool             `json:"isRecurring" yaml:"isRecurring"`
	RecurringEndDate *Instant         `json:"recurringEndDate,omitempty" yaml:"recurringEndDate,omitempty"`
	RecurringPattern RecurringPattern `json:"recurringPattern,omitempty" yaml:"recurringPattern,omitempty" validate:"omitempty,oneof=daily weekly monthly yearly"`
}

// HasRecurringEnd reports whether the recurring window is bounded.
func (t *TaskRecord) HasRecurringEnd() bool {
	return t.RecurringEndDate != nil && !t.RecurringEndDate.IsZero()
}

// MeetingRecord is a meeting as supplied by the document store.
// Status uses the meeting vocabulary, not the task taxonomy.
type MeetingRecord struct {
	ID           string   `json:"id,omitempty" yaml:"id,omitempty"`
	Title        string   `json:"title" yaml:"title" validate:"required"`
	Date         Instant  `json:"date" yaml:"date"`
	Status       string   `json:"status,omitempty" yaml:"status,omitempty"`
	Participants []string `json:"participants,omitempty" yaml:"participants,omitempty"`
}

// ProjectRecord is a project as supplied by the document store.
type ProjectRecord struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string   `json:"name" yaml:"name" validate:"required"`
	Client    string   `json:"client,omitempty" yaml:"client,omitempty"`
	Progress  Progress `json:"progress" yaml:"progress"`
	StartDate Instant  `json:"startDate" yaml:"startDate"`
	EndDate   Instant  `json:"endDate" yaml:"endDate"`
	Status    string   `json:"status,omitempty" yaml:"status,omitempty"`
}

// RecordSet groups every record kind loaded from one source.
type RecordSet struct {
	Tasks    []TaskRecord    `json:"tasks" yaml:"tasks" validate:"dive"`
	Meetings []MeetingRecord `json:"meetings" yaml:"meetings" validate:"dive"`
	Projects []ProjectRecord `json:"projects" yaml:"projects" validate:"dive"`
}

// global validator instance
var validate = validator.New()

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
}
