package replcli

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wagiedev/replkit-go/internal/config"
	"github.com/wagiedev/replkit-go/internal/errors"
)

func TestDiscover_ExplicitPath(t *testing.T) {
	// Any existing file works; discovery does not execute the binary.
	f := filepath.Join(t.TempDir(), "fakerepl")
	require.NoError(t, os.WriteFile(f, []byte("#!/bin/sh\n"), 0o755))

	d := NewDiscoverer(f, nil)

	path, err := d.Discover()
	require.NoError(t, err)
	require.Equal(t, f, path)
}

func TestDiscover_ExplicitPathMissing(t *testing.T) {
	d := NewDiscoverer("/nonexistent/path/to/repl", nil)

	_, err := d.Discover()
	require.Error(t, err)

	var notFound *errors.ReplNotFoundError
	ok := stderrors.As(err, &notFound)
	require.True(t, ok)
	require.Equal(t, []string{"/nonexistent/path/to/repl"}, notFound.SearchedPaths)
}

func TestDiscover_ExplicitCommandName(t *testing.T) {
	// A bare command name resolves through PATH.
	d := NewDiscoverer("sh", nil)

	path, err := d.Discover()
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(path))
}

func TestBuildArgs(t *testing.T) {
	cfg := &config.Config{Flags: []string{"-q", "--no-color"}}
	require.Equal(t, []string{"-q", "--no-color"}, BuildArgs(cfg))

	// Nil flags fall back to the default set.
	require.Equal(t, config.DefaultFlags(), BuildArgs(&config.Config{}))

	// Explicitly empty flags stay empty.
	require.Empty(t, BuildArgs(&config.Config{Flags: []string{}}))
}

func TestBuildArgs_CopiesFlags(t *testing.T) {
	cfg := &config.Config{Flags: []string{"-q"}}
	args := BuildArgs(cfg)
	args[0] = "mutated"

	require.Equal(t, []string{"-q"}, cfg.Flags)
}

func TestBuildEnvironment(t *testing.T) {
	cfg := &config.Config{Env: map[string]string{"REPL_FIXTURE": "users"}}

	env := BuildEnvironment(cfg)

	found := false

	for _, kv := range env {
		if strings.HasPrefix(kv, "REPL_FIXTURE=") {
			require.Equal(t, "REPL_FIXTURE=users", kv)

			found = true
		}
	}

	require.True(t, found, "session env var missing from environment")
}
