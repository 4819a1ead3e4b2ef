package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplNotFoundError(t *testing.T) {
	err := &ReplNotFoundError{
		SearchedPaths: []string{"/usr/bin/sqlite3", "/opt/bin/sqlite3"},
	}

	require.Equal(
		t,
		"REPL binary not found in: [/usr/bin/sqlite3 /opt/bin/sqlite3]",
		err.Error(),
	)
	require.True(t, err.IsReplKitError())
}

func TestProcessIOError(t *testing.T) {
	root := errors.New("broken pipe")
	err := &ProcessIOError{Op: "write", Err: root}

	require.Equal(t, "REPL process I/O failed (write): broken pipe", err.Error())
	require.ErrorIs(t, err, root)
	require.True(t, err.IsReplKitError())
}

func TestProcessIOError_WrapsSessionClosed(t *testing.T) {
	err := &ProcessIOError{Op: "write", Err: ErrSessionClosed}

	require.ErrorIs(t, err, ErrSessionClosed)
}

func TestStderrError(t *testing.T) {
	err := &StderrError{Output: "parse error near SELECTT"}

	require.Equal(t, "error encountered in REPL: parse error near SELECTT", err.Error())
	require.True(t, err.IsReplKitError())
}

func TestMismatchError(t *testing.T) {
	err := &MismatchError{
		Name:     "select-alice",
		SQL:      "SELECT first_name FROM users WHERE id = 1;",
		Expected: "Alice",
		Actual:   "Bob",
	}

	require.Contains(t, err.Error(), "select-alice")
	require.Contains(t, err.Error(), "SELECT first_name FROM users WHERE id = 1;")
	require.Contains(t, err.Error(), `"Alice"`)
	require.Contains(t, err.Error(), `"Bob"`)
	require.True(t, err.IsReplKitError())
}
