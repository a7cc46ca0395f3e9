package errors

import "fmt"

// Category groups related error codes.
type Category string

const (
	CategoryRuntime   Category = "runtime"
	CategoryHydration Category = "hydration"
	CategoryConfig    Category = "config"
	CategoryCLI       Category = "cli"
	CategoryDeploy    Category = "deploy"
)

// Location is a position in a source or configuration file.
type Location struct {
	File string
	Line int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return l.File
}

// CalyxError is a structured error with a stable code, a suggestion, and a
// documentation link.
type CalyxError struct {
	// Code is a unique error identifier (e.g., "C010").
	Code string

	// Category is the error type (runtime, hydration, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is where the error occurred, when known.
	Location *Location

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *CalyxError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *CalyxError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a source location to the error.
func (e *CalyxError) WithLocation(file string, line int) *CalyxError {
	e.Location = &Location{File: file, Line: line}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *CalyxError) WithSuggestion(s string) *CalyxError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *CalyxError) WithDetail(d string) *CalyxError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *CalyxError) Wrap(err error) *CalyxError {
	e.Wrapped = err
	return e
}

// New creates a CalyxError from a registered error code.
func New(code string) *CalyxError {
	template, ok := registry[code]
	if !ok {
		return &CalyxError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &CalyxError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new CalyxError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *CalyxError {
	return &CalyxError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a CalyxError.
func FromError(err error, code string) *CalyxError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*CalyxError); ok {
		return ce
	}
	return New(code).Wrap(err)
}
