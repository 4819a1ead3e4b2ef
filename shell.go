package replkit

import "context"

// Shell is an interactive session with a REPL subprocess.
//
// Lifecycle: Shells are single-use. Start spawns the process, Quit tears it
// down; after Quit every other method fails with ProcessIOError. A Shell is
// not safe for concurrent use: the framing protocol allows at most one
// command in flight, and callers must sequence their calls.
//
// Example usage:
//
//	shell := replkit.NewShell()
//
//	err := shell.Start(ctx,
//	    replkit.WithExecPath("sqlite3"),
//	    replkit.WithInitCommands(".open :memory:"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer shell.Quit(ctx)
//
//	out, err := shell.Execute(ctx, "SELECT 1;")
type Shell interface {
	// Start spawns the REPL subprocess and writes any configured init
	// commands. Must be called before any other method.
	// Returns ReplNotFoundError if the binary cannot be located,
	// ProcessIOError if the process cannot be created.
	Start(ctx context.Context, opts ...Option) error

	// Execute sends a command and returns its framed response: trimmed
	// non-empty output lines joined by single newlines, with banner and
	// prompt noise removed. Output-redirection and shutdown directives
	// return an empty result immediately without waiting.
	// Returns StderrError if the REPL produces error-stream data during
	// the wait, ProcessIOError on a dead session, or ctx's error on
	// cancellation.
	Execute(ctx context.Context, command string) (string, error)

	// SendRaw writes a command without a sentinel probe and without
	// waiting for a response. Use it for directives whose output is
	// irrelevant.
	SendRaw(ctx context.Context, command string) error

	// OutputFilePath returns the conventional target path for ".output"
	// redirection directives, under the configured test directory.
	OutputFilePath() string

	// Quit sends the shutdown directive and requests process
	// termination without waiting for exit confirmation. It does not
	// fail on an already-dead child. After Quit, Execute and SendRaw
	// fail with ProcessIOError.
	Quit(ctx context.Context) error
}

// NewShell creates a new, unstarted shell.
func NewShell() Shell {
	return &shellWrapper{}
}
