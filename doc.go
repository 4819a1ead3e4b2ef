// Package replkit drives a long-lived, line-oriented interactive program —
// a SQL shell such as sqlite3 or a compatible engine — over its standard
// streams, and provides a small harness for asserting on its framed output.
//
// The driver sends newline-terminated text commands on stdin. Because the
// child's responses carry no framing of their own, end-of-response is
// detected by convention: after every real command the driver writes a probe
// query that prints a fixed sentinel, then accumulates stdout until the
// right-trimmed buffer ends with that sentinel. Any data on stderr during
// the wait fails the in-flight command.
//
// # Basic Usage
//
//	ctx := context.Background()
//	shell := replkit.NewShell()
//
//	if err := shell.Start(ctx, replkit.WithExecPath("sqlite3")); err != nil {
//	    log.Fatal(err)
//	}
//	defer shell.Quit(ctx)
//
//	if _, err := shell.Execute(ctx, "CREATE TABLE t (x INTEGER);"); err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := shell.Execute(ctx, "SELECT 1;")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // "1"
//
// For a single command, Run handles the whole lifecycle:
//
//	out, err := replkit.Run(ctx, "SELECT 'hello';")
//
// # Test Harness
//
// Harness wraps a shell with a seeded fixture database and compares framed
// results against expected text:
//
//	h, err := replkit.NewHarness(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Close(ctx)
//
//	err = h.RunTest(ctx, "first-name",
//	    "SELECT first_name FROM users WHERE id = 1;",
//	    "Alice",
//	)
//
// # Limitations
//
// The protocol assumes the sentinel never appears in legitimate output;
// this is not verified. A session supports one in-flight command at a time
// and is not safe for concurrent use; run parallel workloads with separate
// shells. Termination is fire-and-forget: the exit status of the child is
// never inspected.
package replkit
