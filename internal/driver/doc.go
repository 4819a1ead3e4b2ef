// Package driver implements command/response framing over a REPL session.
//
// After every real command the driver writes a probe whose only output is a
// fixed sentinel, then multiplexes readiness across the session's output and
// error channels until the sentinel is observed or stderr produces data.
// Error-stream data always wins: the in-flight command fails even when the
// output stream separately completed.
package driver
