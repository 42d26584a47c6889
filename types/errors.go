/*
Copyright © 2026 The Cosmos Authors
*/
package types

import "fmt"

// CommandError provides structured error information for --json output
type CommandError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`

	cause error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the error the command error was built from, if any.
func (e *CommandError) Unwrap() error {
	return e.cause
}

// WrapCommandError creates a command error that keeps err as its cause.
func WrapCommandError(code string, message string, err error) *CommandError {
	return &CommandError{Code: code, Message: message, cause: err}
}

// NewCommandError creates a new structured command error
func NewCommandError(code string, message string, details map[string]interface{}) *CommandError {
	return &CommandError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Error codes
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeConfig        = "CONFIG_ERROR"
	ErrCodeRecordsSource = "RECORDS_ERROR"
)
