package replkit

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHarness_FakeREPL(t *testing.T) {
	ctx := testContext(t)

	// The init command is a redirection directive the fake REPL ignores,
	// so the default fixture (which it cannot apply) is skipped.
	h, err := NewHarness(ctx, fakeShellOpts(WithInitCommands(".output ignore"))...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close(ctx) })

	require.NoError(t, h.RunTest(ctx, "echo", "hello;", "hello;"))

	err = h.RunTest(ctx, "echo-mismatch", "hello;", "goodbye;")
	require.Error(t, err)

	var mismatch *MismatchError
	ok := stderrors.As(err, &mismatch)
	require.True(t, ok)
	require.Equal(t, "echo-mismatch", mismatch.Name)
	require.Equal(t, "hello;", mismatch.SQL)
	require.Equal(t, "goodbye;", mismatch.Expected)
	require.Equal(t, "hello;", mismatch.Actual)
}

func TestHarness_SQLiteFixture(t *testing.T) {
	requireSQLite(t)

	ctx := testContext(t)

	h, err := NewHarness(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close(ctx) })

	require.NoError(t, h.RunTest(ctx, "first-name",
		"SELECT first_name FROM users WHERE id = 1;",
		"Alice",
	))

	require.NoError(t, h.RunTest(ctx, "users-in-order",
		"SELECT first_name FROM users ORDER BY id;",
		"Alice\nBob\nCharlie\nDavid",
	))

	require.NoError(t, h.RunTest(ctx, "product-count",
		"SELECT count(*) FROM products;",
		"4",
	))
}

func TestHarness_SQLiteMismatchReportsBothValues(t *testing.T) {
	requireSQLite(t)

	ctx := testContext(t)

	h, err := NewHarness(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close(ctx) })

	err = h.RunTest(ctx, "wrong-expectation",
		"SELECT first_name FROM users WHERE id = 2;",
		"Alice",
	)
	require.Error(t, err)

	var mismatch *MismatchError
	ok := stderrors.As(err, &mismatch)
	require.True(t, ok)
	require.Equal(t, "Alice", mismatch.Expected)
	require.Equal(t, "Bob", mismatch.Actual)
}

func TestHarness_CloseThenExecute(t *testing.T) {
	ctx := testContext(t)

	h, err := NewHarness(ctx, fakeShellOpts(WithInitCommands(".output ignore"))...)
	require.NoError(t, err)

	require.NoError(t, h.Close(ctx))

	err = h.RunTest(ctx, "after-close", "hello;", "hello;")
	require.Error(t, err)

	ok := stderrors.As(err, new(*ProcessIOError))
	require.True(t, ok)
}

func TestHarness_OutputFilePath(t *testing.T) {
	ctx := testContext(t)

	h, err := NewHarness(ctx, fakeShellOpts(
		WithInitCommands(".output ignore"),
		WithTestDir("testing"),
	)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close(ctx) })

	require.Equal(t, "testing/shell_output.txt", h.OutputFilePath())
}
