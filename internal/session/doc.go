// Package session owns a REPL child process and its three byte streams.
//
// A Session spawns the configured binary, keeps exclusive ownership of its
// stdin, stdout, and stderr, and pumps the two output streams onto channels
// in bounded chunks so that the driver can multiplex readiness with a plain
// select. Termination is fire-and-forget: the session requests the kill and
// reaps the process in the background without verifying the exit status.
package session
