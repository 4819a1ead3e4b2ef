package replkit

import (
	"context"
	"log/slog"

	"github.com/wagiedev/replkit-go/internal/errors"
)

// fixtureCommands is the default initialization applied when a harness is
// created without explicit init commands: an in-memory database with small
// seeded tables that test cases can query.
func fixtureCommands() []string {
	return []string{
		".open :memory:",
		"CREATE TABLE users (id INTEGER PRIMARY KEY, first_name TEXT, last_name TEXT, age INTEGER);",
		"CREATE TABLE products (id INTEGER PRIMARY KEY, name TEXT, price INTEGER);",
		"INSERT INTO users VALUES (1, 'Alice', 'Smith', 30), (2, 'Bob', 'Johnson', 25), " +
			"(3, 'Charlie', 'Brown', 66), (4, 'David', 'Nichols', 70);",
		"INSERT INTO products VALUES (1, 'Hat', 19.99), (2, 'Shirt', 29.99), " +
			"(3, 'Shorts', 39.99), (4, 'Dress', 49.99);",
		".nullvalue NULL",
	}
}

// Harness runs named test cases against one shell and reports differences
// between expected and framed actual output. A failed case does not attempt
// to resynchronize the session; the shell stays open for further cases, but
// its state after a protocol error is undefined.
type Harness struct {
	shell Shell
	log   *slog.Logger
}

// NewHarness starts a shell for test execution. When no init commands are
// configured, the default fixture database is created.
func NewHarness(ctx context.Context, opts ...Option) (*Harness, error) {
	probe := applyOptions(opts)
	if len(probe.InitCommands) == 0 {
		opts = append(opts, WithInitCommands(fixtureCommands()...))
	}

	log := probe.Logger
	if log == nil {
		log = NopLogger()
	}

	shell := NewShell()
	if err := shell.Start(ctx, opts...); err != nil {
		return nil, err
	}

	return &Harness{
		shell: shell,
		log:   log.With("component", "harness"),
	}, nil
}

// Shell exposes the underlying shell for cases that need direct access,
// e.g. redirection directives.
func (h *Harness) Shell() Shell {
	return h.shell
}

// RunTest executes sql and compares the framed result with expected.
// Returns MismatchError on difference; protocol failures pass through
// unchanged. There is no retry.
func (h *Harness) RunTest(ctx context.Context, name, sql, expected string) error {
	h.log.Info("Running test", "name", name)

	actual, err := h.shell.Execute(ctx, sql)
	if err != nil {
		return err
	}

	if actual != expected {
		return &errors.MismatchError{
			Name:     name,
			SQL:      sql,
			Expected: expected,
			Actual:   actual,
		}
	}

	return nil
}

// SendDirective writes a dot-command without waiting for any response.
func (h *Harness) SendDirective(ctx context.Context, directive string) error {
	return h.shell.SendRaw(ctx, directive)
}

// OutputFilePath returns the conventional redirected-output target for this
// harness's configuration.
func (h *Harness) OutputFilePath() string {
	return h.shell.OutputFilePath()
}

// Close quits the underlying shell.
func (h *Harness) Close(ctx context.Context) error {
	return h.shell.Quit(ctx)
}
