package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/taskapp/internal/store"
)

// Process exit codes
const (
	ExitSuccess    = 0
	ExitError      = 1 // storage failures and anything unclassified
	ExitUsage      = 2 // bad flags or arguments
	ExitNotFound   = 3 // no task or label with that id
	ExitDataErr    = 4 // a saved or imported snapshot that cannot be parsed
	ExitValidation = 5 // a config value out of range, e.g. an unknown seed
)

// NotFoundError reports a task or label id that does not exist
type NotFoundError struct {
	Kind string // "task" or "label"
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// UsageError reports bad flags or arguments
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Usagef builds a UsageError
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var notFound *NotFoundError
	var usage *UsageError
	switch {
	case errors.As(err, &notFound):
		return ExitNotFound
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, store.ErrMalformedSnapshot):
		return ExitDataErr
	case errors.Is(err, store.ErrUnknownSeed):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode is the machine-readable code printed in JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitDataErr:
		return "MALFORMED_SNAPSHOT"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "ERROR"
	}
}

// ReportedError marks an error that was already printed to the user
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// IsReported reports whether err was already printed by a command
func IsReported(err error) bool {
	var reported *ReportedError
	return errors.As(err, &reported)
}
