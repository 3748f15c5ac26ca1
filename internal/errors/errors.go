// Package errors provides a hierarchical error system for viewseg operations.
// It implements typed errors that can be inspected and handled differently
// based on their category, and maps each category to a process exit status.
package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// ErrorType represents the category of error for classification and handling.
type ErrorType string

// Error type constants define the categories of errors that can occur while
// viewing a file segment.
const (
	ErrTypeUsage   ErrorType = "usage"
	ErrTypeFile    ErrorType = "file"
	ErrTypeConfig  ErrorType = "config"
	ErrTypeParsing ErrorType = "parsing"
	ErrTypeRange   ErrorType = "range"
	ErrTypeDecode  ErrorType = "decode"
	ErrTypeOutput  ErrorType = "output"
)

// Exit status constants. Every failure currently exits with ExitFailure;
// the split keeps the usage path explicit at the call site.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 1
)

// ViewError is the base error type that provides structured error information.
// Specific error types embed it so callers can match on the category with
// errors.Is and still reach the path and cause.
type ViewError struct {
	Type    ErrorType
	Path    string
	Message string
	Cause   error
}

func (e *ViewError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *ViewError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a ViewError of the same category.
func (e *ViewError) Is(target error) bool {
	t, ok := target.(*ViewError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// UsageError is returned when the command line is missing positional
// arguments. Its message is the usage line itself and is printed to stdout.
type UsageError struct {
	*ViewError
}

// NewUsageError creates a usage error carrying the literal usage text.
func NewUsageError(usage string) *UsageError {
	return &UsageError{
		ViewError: &ViewError{
			Type:    ErrTypeUsage,
			Message: usage,
		},
	}
}

// Usage returns the usage line without the error-category prefix.
func (e *UsageError) Usage() string {
	return e.Message
}

// FileError represents file system operation errors.
type FileError struct {
	*ViewError
}

// NewFileError creates a file operation error with context.
func NewFileError(path, message string, cause error) *FileError {
	return &FileError{
		ViewError: &ViewError{
			Type:    ErrTypeFile,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// FileNotFoundError represents errors when the target file does not exist.
type FileNotFoundError struct {
	*FileError
}

// NewFileNotFoundError creates a file not found error.
func NewFileNotFoundError(path string, cause error) *FileNotFoundError {
	return &FileNotFoundError{
		FileError: NewFileError(path, "file not found", cause),
	}
}

// FileNotReadableError represents errors when the target exists but cannot
// be read as a file: permission failures and directories both land here.
type FileNotReadableError struct {
	*FileError
}

// NewFileNotReadableError creates a file read error.
func NewFileNotReadableError(path, message string, cause error) *FileNotReadableError {
	if message == "" {
		message = "file not readable"
	}
	return &FileNotReadableError{
		FileError: NewFileError(path, message, cause),
	}
}

// ConfigError represents flag and configuration validation errors.
type ConfigError struct {
	*ViewError
}

// NewConfigError creates a configuration error without path context.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		ViewError: &ViewError{
			Type:    ErrTypeConfig,
			Message: message,
			Cause:   cause,
		},
	}
}

// ParsingError represents a positional argument that is not a valid integer.
type ParsingError struct {
	*ViewError
	Argument string
	Value    string
}

// NewParsingError creates a parsing error for the named argument.
func NewParsingError(argument, value string, cause error) *ParsingError {
	return &ParsingError{
		ViewError: &ViewError{
			Type:    ErrTypeParsing,
			Message: fmt.Sprintf("%s %q is not an integer", argument, value),
			Cause:   cause,
		},
		Argument: argument,
		Value:    value,
	}
}

// RangeError represents a line bound outside the accepted domain.
type RangeError struct {
	*ViewError
}

// NewRangeError creates a range validation error.
func NewRangeError(message string) *RangeError {
	return &RangeError{
		ViewError: &ViewError{
			Type:    ErrTypeRange,
			Message: message,
		},
	}
}

// DecodeError represents a failure to set up or run the text decoder.
// Malformed input bytes never produce one; they are dropped or replaced.
type DecodeError struct {
	*ViewError
}

// NewDecodeError creates a decoding error.
func NewDecodeError(path, message string, cause error) *DecodeError {
	return &DecodeError{
		ViewError: &ViewError{
			Type:    ErrTypeDecode,
			Path:    path,
			Message: message,
			Cause:   cause,
		},
	}
}

// OutputError represents a failure writing to standard output.
type OutputError struct {
	*ViewError
}

// NewOutputError creates an output error.
func NewOutputError(message string, cause error) *OutputError {
	return &OutputError{
		ViewError: &ViewError{
			Type:    ErrTypeOutput,
			Message: message,
			Cause:   cause,
		},
	}
}

// WrapFileError converts standard Go file errors into typed ViewError values.
func WrapFileError(path string, err error) error {
	if err == nil {
		return nil
	}

	absPath, absErr := filepath.Abs(path)
	if absErr != nil {
		absPath = path
	}
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return NewFileNotFoundError(absPath, err)
	case stderrors.Is(err, fs.ErrPermission):
		return NewFileNotReadableError(absPath, "permission denied", err)
	default:
		return NewFileError(absPath, "file operation failed", err)
	}
}

// AsUsage returns the UsageError in err's chain, if any.
func AsUsage(err error) (*UsageError, bool) {
	var ue *UsageError
	if stderrors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// ExitCode maps an error returned by the command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if _, ok := AsUsage(err); ok {
		return ExitUsage
	}
	return ExitFailure
}
