// Package frame turns the REPL's unstructured output stream into discrete,
// comparison-stable results. End-of-response is detected purely by
// convention: the driver appends a query that prints a fixed sentinel, and a
// right-trimmed buffer ending in that sentinel marks the response boundary.
// The sentinel is assumed never to appear in legitimate output; that
// assumption is not verified.
package frame

import (
	"fmt"
	"strings"
)

// Sentinel is the default end-of-response marker.
const Sentinel = "END_OF_RESULT"

// ShutdownDirective is the command that asks the REPL to exit.
const ShutdownDirective = ".quit"

// Probe returns the query whose only effect is to print the sentinel.
func Probe(sentinel string) string {
	return fmt.Sprintf("SELECT '%s';", sentinel)
}

// Kind classifies a command before dispatch.
type Kind int

const (
	// KindNormal is a regular command whose response arrives on stdout.
	KindNormal Kind = iota

	// KindRedirectsOutput marks a directive that reroutes the REPL's output
	// to a file. Waiting for a sentinel after one of these would hang
	// forever, so the driver writes it and returns immediately.
	KindRedirectsOutput

	// KindShutdown marks a directive that asks the REPL to exit.
	KindShutdown
)

func (k Kind) String() string {
	switch k {
	case KindRedirectsOutput:
		return "redirects_output"
	case KindShutdown:
		return "shutdown"
	default:
		return "normal"
	}
}

// Classify determines how a command must be dispatched. It is the single
// place where directive prefixes are recognized.
func Classify(command string) Kind {
	trimmed := strings.TrimSpace(command)

	switch {
	case strings.HasPrefix(trimmed, ".output"),
		strings.HasPrefix(trimmed, ".once"):
		return KindRedirectsOutput

	case trimmed == ".quit",
		trimmed == ".exit",
		strings.HasPrefix(trimmed, ".exit "):
		return KindShutdown
	}

	return KindNormal
}

// EndsWithSentinel reports whether the right-trimmed buffer ends with the
// sentinel, i.e. whether the response is complete.
func EndsWithSentinel(buf, sentinel string) bool {
	return strings.HasSuffix(strings.TrimRight(buf, " \t\r\n"), sentinel)
}

// Clean frames raw accumulated output into the final result: trailing
// whitespace and the trailing sentinel are removed, blank lines are dropped,
// each surviving line is trimmed, and the lines are joined with a single
// newline. This absorbs REPL banners, prompt echoes, and platform newline
// differences. Clean is idempotent on already-clean text.
func Clean(raw, sentinel string) string {
	out := strings.TrimRight(raw, " \t\r\n")
	out = strings.TrimSuffix(out, sentinel)

	var lines []string

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}
