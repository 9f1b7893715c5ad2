package errors

import (
	"fmt"
)

// ParseError represents a landing config parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures config or form input validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DeliveryError represents a failure handing a waitlist submission to the
// delivery endpoint. Delivery is best-effort, so callers log these and move on.
type DeliveryError struct {
	Endpoint string
	Err      error
}

// NewDeliveryError constructs a DeliveryError.
func NewDeliveryError(endpoint string, err error) error {
	return &DeliveryError{Endpoint: endpoint, Err: err}
}

func (e *DeliveryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Endpoint != "" {
		return fmt.Sprintf("delivery error: %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("delivery error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *DeliveryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ScheduleError indicates a panel could not be scheduled for the scroll
// sequence. These are non-fatal: the panel is skipped and the rest of the
// sequence still registers.
type ScheduleError struct {
	PanelID string
	Message string
}

// NewScheduleError constructs a ScheduleError for the given panel.
func NewScheduleError(panelID, message string) error {
	return &ScheduleError{PanelID: panelID, Message: message}
}

func (e *ScheduleError) Error() string {
	if e == nil {
		return ""
	}
	if e.PanelID != "" {
		return fmt.Sprintf("schedule error [%s]: %s", e.PanelID, e.Message)
	}
	return fmt.Sprintf("schedule error: %s", e.Message)
}
