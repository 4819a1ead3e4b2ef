package driver

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/wagiedev/replkit-go/internal/config"
	"github.com/wagiedev/replkit-go/internal/errors"
	"github.com/wagiedev/replkit-go/internal/frame"
	"github.com/wagiedev/replkit-go/internal/session"
)

// Driver frames commands and responses over one session. It does not lock
// internally: at most one Execute call may be in flight at a time, enforced
// by the caller's strictly sequential call order.
type Driver struct {
	log        *slog.Logger
	sess       *session.Session
	sentinel   string
	stderrFunc func(string)
}

// New creates a driver over a started session.
func New(log *slog.Logger, sess *session.Session, cfg *config.Config) *Driver {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	sentinel := cfg.Sentinel
	if sentinel == "" {
		sentinel = frame.Sentinel
	}

	stderrFunc := cfg.StderrFunc
	if stderrFunc == nil {
		stderrFunc = func(text string) { fmt.Fprint(os.Stderr, text) }
	}

	return &Driver{
		log:        log.With("component", "driver", "session_id", sess.ID()),
		sess:       sess,
		sentinel:   sentinel,
		stderrFunc: stderrFunc,
	}
}

// Execute sends a command and returns its framed response.
//
// Output-redirection directives are written without a sentinel probe and
// return an empty result immediately: their output no longer arrives on the
// monitored stream, so waiting would hang forever. Shutdown directives get
// the same escape, since the process stops responding after one.
func (d *Driver) Execute(ctx context.Context, command string) (string, error) {
	kind := frame.Classify(command)
	d.log.Debug("Executing command", "kind", kind.String())

	if kind != frame.KindNormal {
		return "", d.sess.Write(ctx, command)
	}

	if err := d.sess.Write(ctx, command); err != nil {
		return "", err
	}

	if err := d.sess.Write(ctx, frame.Probe(d.sentinel)); err != nil {
		return "", err
	}

	return d.await(ctx)
}

// SendRaw writes a command without a sentinel probe and without waiting for
// any response. Used for directives whose output the caller does not care
// about.
func (d *Driver) SendRaw(ctx context.Context, command string) error {
	return d.sess.Write(ctx, command)
}

// Quit sends the shutdown directive and requests process termination. It
// does not wait for the child to exit and does not fail when the child is
// already gone; termination is fire-and-forget.
func (d *Driver) Quit(ctx context.Context) error {
	if err := d.sess.Write(ctx, frame.ShutdownDirective); err != nil {
		if ok := stderrors.As(err, new(*errors.ProcessIOError)); !ok {
			return err
		}
		// Stdin already closed: the child is gone or going; the kill
		// below still applies.
	}

	d.sess.Terminate()

	return nil
}

// await accumulates output chunks until the right-trimmed buffer ends with
// the sentinel, failing immediately if the error stream produces data or ctx
// is done.
func (d *Driver) await(ctx context.Context) (string, error) {
	var buf strings.Builder

	outCh := d.sess.Output()
	errCh := d.sess.Stderr()

	for {
		// The error stream wins whenever it is already ready.
		select {
		case chunk, ok := <-errCh:
			if ok {
				return "", d.failStderr(chunk, errCh)
			}

			errCh = nil
		default:
		}

		select {
		case <-ctx.Done():
			d.log.Debug("Context done while awaiting sentinel", "error", ctx.Err())

			return "", ctx.Err()

		case chunk, ok := <-errCh:
			if !ok {
				errCh = nil

				continue
			}

			return "", d.failStderr(chunk, errCh)

		case chunk, ok := <-outCh:
			if !ok {
				return "", &errors.ProcessIOError{Op: "read", Err: errors.ErrSessionClosed}
			}

			buf.Write(chunk)

			if frame.EndsWithSentinel(buf.String(), d.sentinel) {
				// A pending error chunk still has the final say.
				select {
				case chunk, ok := <-errCh:
					if ok {
						return "", d.failStderr(chunk, errCh)
					}
				default:
				}

				d.log.Debug("Sentinel observed", "bytes", buf.Len())

				return frame.Clean(buf.String(), d.sentinel), nil
			}
		}
	}
}

// failStderr drains every immediately-available error chunk, emits each to
// the diagnostic sink, and reports the hard failure. No retry, no partial
// result.
func (d *Driver) failStderr(first []byte, errCh <-chan []byte) error {
	var sb strings.Builder

	sb.Write(first)
	d.stderrFunc(string(first))

	for {
		select {
		case chunk, ok := <-errCh:
			if !ok {
				return d.stderrError(sb.String())
			}

			sb.Write(chunk)
			d.stderrFunc(string(chunk))
		default:
			return d.stderrError(sb.String())
		}
	}
}

func (d *Driver) stderrError(output string) error {
	output = strings.TrimRight(output, "\n")
	d.log.Error("REPL produced stderr output", "stderr", output)

	return &errors.StderrError{Output: output}
}
