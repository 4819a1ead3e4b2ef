package replkit

import "context"

// Run executes a single command against a fresh REPL session and tears the
// session down afterwards. It is the one-shot convenience over NewShell for
// callers that do not need session state across commands.
func Run(ctx context.Context, command string, opts ...Option) (string, error) {
	shell := NewShell()

	if err := shell.Start(ctx, opts...); err != nil {
		return "", err
	}

	out, err := shell.Execute(ctx, command)

	// Teardown is best-effort; the execute result is what matters.
	quitErr := shell.Quit(ctx)
	if err == nil {
		err = quitErr
	}

	return out, err
}
