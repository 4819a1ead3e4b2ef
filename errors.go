package replkit

import "github.com/wagiedev/replkit-go/internal/errors"

// Re-export error types from internal package

// ReplNotFoundError indicates the REPL binary was not found.
type ReplNotFoundError = errors.ReplNotFoundError

// ProcessIOError indicates spawning the REPL process failed or a write was
// attempted against an absent or closed input stream.
type ProcessIOError = errors.ProcessIOError

// StderrError indicates the REPL produced data on its error stream during a
// command's execution window.
type StderrError = errors.StderrError

// MismatchError indicates a harness assertion failed.
type MismatchError = errors.MismatchError

// ReplKitError is the base interface for all replkit errors.
type ReplKitError = errors.ReplKitError

// Re-export sentinel errors from internal package.
var (
	// ErrSessionNotStarted indicates the session has not been started yet.
	ErrSessionNotStarted = errors.ErrSessionNotStarted

	// ErrSessionAlreadyStarted indicates Start was called on a running session.
	ErrSessionAlreadyStarted = errors.ErrSessionAlreadyStarted

	// ErrSessionClosed indicates the session has been terminated.
	ErrSessionClosed = errors.ErrSessionClosed
)
