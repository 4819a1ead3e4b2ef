package errors

import (
	"errors"
	"fmt"
)

// ReplKitError is the base interface for all replkit errors.
type ReplKitError interface {
	error
	IsReplKitError() bool
}

// Compile-time verification that all error types implement ReplKitError.
var (
	_ ReplKitError = (*ReplNotFoundError)(nil)
	_ ReplKitError = (*ProcessIOError)(nil)
	_ ReplKitError = (*StderrError)(nil)
	_ ReplKitError = (*MismatchError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrSessionNotStarted indicates the session has not been started yet.
	ErrSessionNotStarted = errors.New("session not started")

	// ErrSessionAlreadyStarted indicates Start was called on a running session.
	ErrSessionAlreadyStarted = errors.New("session already started")

	// ErrSessionClosed indicates the session has been terminated and cannot
	// be reused. Sessions are single-use; create a new one with NewShell().
	ErrSessionClosed = errors.New("session closed")
)

// ReplNotFoundError indicates the REPL binary was not found.
type ReplNotFoundError struct {
	SearchedPaths []string
}

func (e *ReplNotFoundError) Error() string {
	return fmt.Sprintf("REPL binary not found in: %v", e.SearchedPaths)
}

// IsReplKitError implements ReplKitError.
func (e *ReplNotFoundError) IsReplKitError() bool { return true }

// ProcessIOError indicates an I/O operation against the child process failed:
// the process could not be spawned, or a write was attempted against an
// absent or closed input stream. Fatal to the session; there is no retry.
type ProcessIOError struct {
	Op  string
	Err error
}

func (e *ProcessIOError) Error() string {
	return fmt.Sprintf("REPL process I/O failed (%s): %v", e.Op, e.Err)
}

func (e *ProcessIOError) Unwrap() error {
	return e.Err
}

// IsReplKitError implements ReplKitError.
func (e *ProcessIOError) IsReplKitError() bool { return true }

// StderrError indicates the REPL produced data on its error stream during a
// command's execution window. The in-flight command is abandoned; no partial
// result is returned even if the output stream held a complete response.
type StderrError struct {
	Output string
}

func (e *StderrError) Error() string {
	return fmt.Sprintf("error encountered in REPL: %s", e.Output)
}

// IsReplKitError implements ReplKitError.
func (e *StderrError) IsReplKitError() bool { return true }

// MismatchError indicates a harness assertion failed: the framed actual
// result differs from the expected text. It carries both values plus the
// originating command for diagnosis.
type MismatchError struct {
	Name     string
	SQL      string
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf(
		"test failed: %s\nSQL: %s\nExpected:\n%q\nActual:\n%q",
		e.Name, e.SQL, e.Expected, e.Actual,
	)
}

// IsReplKitError implements ReplKitError.
func (e *MismatchError) IsReplKitError() bool { return true }
