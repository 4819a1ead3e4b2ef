package replcli

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/wagiedev/replkit-go/internal/config"
	"github.com/wagiedev/replkit-go/internal/errors"
)

// Discoverer locates the REPL binary.
type Discoverer struct {
	execPath string
	log      *slog.Logger
}

// NewDiscoverer creates a discoverer. execPath, when non-empty, is used as
// the one and only candidate; otherwise config.DefaultExecName is searched
// on PATH and in common locations.
func NewDiscoverer(execPath string, log *slog.Logger) *Discoverer {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Discoverer{
		execPath: execPath,
		log:      log,
	}
}

// Discover returns the path of the REPL binary, or ReplNotFoundError listing
// every location that was searched.
func (d *Discoverer) Discover() (string, error) {
	// If an explicit path is provided, use it and only it.
	if d.execPath != "" {
		d.log.Debug("Using explicit REPL path", "exec_path", d.execPath)

		if _, err := os.Stat(d.execPath); err == nil {
			return d.execPath, nil
		}

		// An explicit path may also be a bare command name.
		if path, err := exec.LookPath(d.execPath); err == nil {
			return path, nil
		}

		return "", &errors.ReplNotFoundError{SearchedPaths: []string{d.execPath}}
	}

	searchedPaths := make([]string, 0, 4)

	d.log.Debug("Searching for REPL binary in PATH", "name", config.DefaultExecName)

	if path, err := exec.LookPath(config.DefaultExecName); err == nil {
		d.log.Debug("Found REPL binary in PATH", "path", path)

		return path, nil
	}

	searchedPaths = append(searchedPaths, "$PATH")

	commonPaths := []string{
		filepath.Join("/usr/local/bin", config.DefaultExecName),
		filepath.Join("/usr/bin", config.DefaultExecName),
	}

	if homeDir, err := os.UserHomeDir(); err == nil {
		commonPaths = append(commonPaths, filepath.Join(homeDir, ".local/bin", config.DefaultExecName))
	}

	for _, path := range commonPaths {
		searchedPaths = append(searchedPaths, path)

		if _, err := os.Stat(path); err == nil {
			d.log.Debug("Found REPL binary at common path", "path", path)

			return path, nil
		}
	}

	d.log.Warn("REPL binary not found in any searched paths", "searched_paths", searchedPaths)

	return "", &errors.ReplNotFoundError{SearchedPaths: searchedPaths}
}
