package replkit

import (
	"log/slog"

	"github.com/wagiedev/replkit-go/internal/config"
)

// Option configures a shell using the functional options pattern.
type Option func(*config.Config)

// applyOptions builds a Config from environment defaults plus the given
// options. The environment is read once, here; nothing consults it later.
func applyOptions(opts []Option) *config.Config {
	cfg := config.FromEnv()
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithLogger sets the logger for debug output.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config.Config) {
		c.Logger = logger
	}
}

// WithExecPath sets the path (or bare command name) of the REPL binary.
// If not set, the REPLKIT_TARGET environment variable is honored, then
// "sqlite3" is searched in PATH and common locations.
func WithExecPath(path string) Option {
	return func(c *config.Config) {
		c.ExecPath = path
	}
}

// WithFlags replaces the command line flags passed to the REPL binary.
func WithFlags(flags ...string) Option {
	return func(c *config.Config) {
		c.Flags = flags
	}
}

// WithInitCommands sets commands written to the REPL immediately after it
// starts, before any Execute call.
func WithInitCommands(commands ...string) Option {
	return func(c *config.Config) {
		c.InitCommands = commands
	}
}

// WithEnv provides additional environment variables for the REPL process.
func WithEnv(env map[string]string) Option {
	return func(c *config.Config) {
		c.Env = env
	}
}

// WithCwd sets the working directory for the REPL process.
func WithCwd(cwd string) Option {
	return func(c *config.Config) {
		c.Cwd = cwd
	}
}

// WithTestDir sets the directory for redirected-output files.
func WithTestDir(dir string) Option {
	return func(c *config.Config) {
		c.TestDir = dir
	}
}

// WithSentinel overrides the end-of-response marker. The caller must pick a
// string that never appears in legitimate output; the protocol does not
// verify this.
func WithSentinel(sentinel string) Option {
	return func(c *config.Config) {
		c.Sentinel = sentinel
	}
}

// WithPTY starts the REPL on a pseudo-terminal instead of pipes, for
// programs that refuse interactive mode when stdin is not a tty. Stderr is
// merged into the terminal stream in this mode, so stderr-failure detection
// is unavailable and written commands are echoed into the output.
func WithPTY(use bool) Option {
	return func(c *config.Config) {
		c.UsePTY = use
	}
}

// WithStderrFunc sets the diagnostic sink that receives error-stream data
// drained before an Execute call fails. If not set, the data is printed to
// os.Stderr.
func WithStderrFunc(fn func(string)) Option {
	return func(c *config.Config) {
		c.StderrFunc = fn
	}
}
