// Package replcli locates the REPL binary and assembles its invocation.
//
// Discovery searches an explicit path first, then the system PATH, then
// common installation directories. Argument and environment assembly are
// pure functions of the session Config so that invocation is reproducible
// and testable without spawning anything.
package replcli
