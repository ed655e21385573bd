package common

import (
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeConfiguration for configuration-related errors
	ErrorTypeConfiguration ErrorType = "configuration"
	// ErrorTypeValidation for validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeDriver for browser backend start-up and teardown errors
	ErrorTypeDriver ErrorType = "driver"
	// ErrorTypeNavigation for page navigation errors
	ErrorTypeNavigation ErrorType = "navigation"
	// ErrorTypeScenario for failed smoke scenario steps
	ErrorTypeScenario ErrorType = "scenario"
)

// PageError represents a structured error with context
type PageError struct {
	Type      ErrorType              `json:"type"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Context   map[string]interface{} `json:"context,omitempty"`
	Cause     error                  `json:"-"`
}

// Error implements the error interface
func (e *PageError) Error() string {
	msg := fmt.Sprintf("[%s:%s] %s", e.Type, e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap implements the errors.Unwrap interface
func (e *PageError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *PageError) WithContext(key string, value interface{}) *PageError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithCause sets the underlying cause
func (e *PageError) WithCause(cause error) *PageError {
	e.Cause = cause
	return e
}

// WithDetails sets a human readable detail string
func (e *PageError) WithDetails(details string) *PageError {
	e.Details = details
	return e
}

// NewError creates a new PageError
func NewError(errorType ErrorType, code, message string) *PageError {
	return &PageError{
		Type:      errorType,
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func NewConfigurationError(code, message string) *PageError {
	return NewError(ErrorTypeConfiguration, code, message)
}

func NewValidationError(code, message string) *PageError {
	return NewError(ErrorTypeValidation, code, message)
}

func NewDriverError(code, message string) *PageError {
	return NewError(ErrorTypeDriver, code, message)
}

func NewNavigationError(code, message string) *PageError {
	return NewError(ErrorTypeNavigation, code, message)
}

func NewScenarioError(code, message string) *PageError {
	return NewError(ErrorTypeScenario, code, message)
}

// WrapError wraps an existing error with PageError context
func WrapError(err error, errorType ErrorType, code, message string) *PageError {
	return NewError(errorType, code, message).WithCause(err)
}
