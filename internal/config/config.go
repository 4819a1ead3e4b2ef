// Package config holds the explicit configuration for a REPL session.
//
// Environment variables are read exactly once, when a Config is constructed
// via FromEnv. After that the Config is a plain value passed to the session;
// nothing in replkit consults ambient process state at run time.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultExecName is the REPL binary searched for when no explicit
	// path is configured.
	DefaultExecName = "sqlite3"

	// DefaultTestDir is the directory used for redirected-output files.
	DefaultTestDir = "testing"

	// OutputFileName is the file name used for redirected REPL output.
	OutputFileName = "shell_output.txt"
)

// Environment variables honored by FromEnv.
const (
	// EnvTarget overrides the REPL binary path.
	EnvTarget = "REPLKIT_TARGET"

	// EnvFlags overrides the REPL flag list (whitespace-separated).
	EnvFlags = "REPLKIT_FLAGS"

	// EnvTestDir overrides the test directory.
	EnvTestDir = "REPLKIT_TEST_DIR"
)

// DefaultFlags returns the default flag set passed to the REPL binary.
// "-batch" keeps sqlite3 free of prompts and interactive banners.
func DefaultFlags() []string {
	return []string{"-batch"}
}

// Config configures a single REPL session. A zero value is usable: empty
// fields fall back to discovery and package defaults at session start.
type Config struct {
	// ExecPath is the path to the REPL binary. Empty means discover
	// DefaultExecName on PATH and in common locations.
	ExecPath string

	// Flags are the command line flags passed to the REPL binary.
	Flags []string

	// InitCommands are written to the REPL immediately after it starts,
	// each followed by a newline. Their output is not framed; the REPL is
	// expected to stay quiet while applying them.
	InitCommands []string

	// Env holds additional environment variables for the child process.
	Env map[string]string

	// Cwd is the working directory for the child process. Empty means
	// inherit the caller's.
	Cwd string

	// TestDir is the directory for redirected-output files.
	TestDir string

	// Sentinel overrides the end-of-response marker. Empty means the
	// package default. The caller is responsible for choosing a marker
	// that never appears in legitimate output; this is not verified.
	Sentinel string

	// UsePTY starts the REPL on a pseudo-terminal instead of pipes, for
	// programs that refuse interactive mode when stdin is not a tty.
	// The kernel merges stderr into the terminal stream in this mode, so
	// stderr-failure detection is unavailable.
	UsePTY bool

	// Logger receives debug output. Nil disables logging.
	Logger *slog.Logger

	// StderrFunc is the diagnostic sink for data drained from the error
	// stream before an execute call fails. Nil means print to os.Stderr.
	StderrFunc func(string)
}

// FromEnv builds a Config from defaults and environment overrides.
func FromEnv() *Config {
	cfg := &Config{
		Flags:   DefaultFlags(),
		TestDir: DefaultTestDir,
	}

	if target := os.Getenv(EnvTarget); target != "" {
		cfg.ExecPath = target
	}

	if flags := os.Getenv(EnvFlags); flags != "" {
		cfg.Flags = strings.Fields(flags)
	}

	if dir := os.Getenv(EnvTestDir); dir != "" {
		cfg.TestDir = dir
	}

	return cfg
}

// OutputFilePath returns the conventional path for redirected REPL output,
// the target of ".output" directives in harness scripts.
func (c *Config) OutputFilePath() string {
	dir := c.TestDir
	if dir == "" {
		dir = DefaultTestDir
	}

	return filepath.Join(dir, OutputFileName)
}
