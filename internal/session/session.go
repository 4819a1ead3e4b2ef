package session

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/replkit-go/internal/config"
	"github.com/wagiedev/replkit-go/internal/errors"
	"github.com/wagiedev/replkit-go/internal/replcli"
)

const (
	// ChunkSize is the bounded read size for one output-stream read, one
	// pipe-buffer unit.
	ChunkSize = 4096

	// chanCapacity bounds how many chunks a pump can stay ahead of the
	// consumer before blocking on the channel.
	chanCapacity = 16
)

// Session owns one REPL child process. At most one command may be in flight
// per session; callers sequence Write calls and channel reads themselves.
type Session struct {
	log  *slog.Logger
	id   string
	cfg  *config.Config
	cmd  *exec.Cmd
	ptmx io.Closer

	output chan []byte
	errs   chan []byte
	pumps  *errgroup.Group
	done   chan struct{}

	mu          sync.Mutex // protects stdin and lifecycle flags
	stdin       io.WriteCloser
	started     bool
	stdinClosed bool
	terminated  bool
}

// New creates an unstarted session for the given configuration.
func New(log *slog.Logger, cfg *config.Config) *Session {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	id := ulid.Make().String()

	return &Session{
		log:  log.With("component", "session", "session_id", id),
		id:   id,
		cfg:  cfg,
		done: make(chan struct{}),
	}
}

// ID returns the session's ULID.
func (s *Session) ID() string {
	return s.id
}

// Start spawns the REPL process, wires its streams, and writes the
// configured init commands. Returns ReplNotFoundError if the binary cannot
// be located and ProcessIOError if the process cannot be created.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()

		return errors.ErrSessionAlreadyStarted
	}

	s.started = true
	s.mu.Unlock()

	discoverer := replcli.NewDiscoverer(s.cfg.ExecPath, s.log)

	execPath, err := discoverer.Discover()
	if err != nil {
		return err
	}

	args := replcli.BuildArgs(s.cfg)
	s.log.Info("Starting REPL subprocess", "exec_path", execPath, "args", args)

	cmd := exec.Command(execPath, args...)
	cmd.Env = replcli.BuildEnvironment(s.cfg)

	if s.cfg.Cwd != "" {
		cmd.Dir = s.cfg.Cwd
	}

	if s.cfg.UsePTY {
		err = s.startPTY(cmd)
	} else {
		err = s.startPipes(cmd)
	}

	if err != nil {
		return err
	}

	s.log.Info("REPL subprocess started", "pid", cmd.Process.Pid)

	if len(s.cfg.InitCommands) > 0 {
		if err := s.Write(ctx, strings.Join(s.cfg.InitCommands, "\n")); err != nil {
			s.Terminate()

			return err
		}
	}

	return nil
}

// startPipes wires stdin, stdout, and stderr pipes and launches the pumps.
func (s *Session) startPipes(cmd *exec.Cmd) error {
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &errors.ProcessIOError{Op: "stdin pipe", Err: err}
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &errors.ProcessIOError{Op: "stdout pipe", Err: err}
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &errors.ProcessIOError{Op: "stderr pipe", Err: err}
	}

	if err := cmd.Start(); err != nil {
		s.log.Error("Failed to start REPL process", "error", err)

		return &errors.ProcessIOError{Op: "start", Err: err}
	}

	s.cmd = cmd
	s.stdin = stdin
	s.output = make(chan []byte, chanCapacity)
	s.errs = make(chan []byte, chanCapacity)

	s.pumps = &errgroup.Group{}
	s.pumps.Go(func() error { return s.pump(stdout, s.output, "stdout") })
	s.pumps.Go(func() error { return s.pump(stderr, s.errs, "stderr") })

	return nil
}

// pump copies one stream onto its channel in bounded chunks. The channel is
// closed on EOF so consumers can observe stream closure.
func (s *Session) pump(r io.Reader, ch chan []byte, name string) error {
	defer close(ch)

	buf := make([]byte, ChunkSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])

			select {
			case ch <- chunk:
			case <-s.done:
				return nil
			}
		}

		if err != nil {
			if stderrors.Is(err, io.EOF) || stderrors.Is(err, fs.ErrClosed) {
				return nil
			}

			// Reads fail with platform-specific errors once the
			// session is torn down; that is not a pump failure.
			select {
			case <-s.done:
				return nil
			default:
			}

			s.log.Debug("Stream read failed", "stream", name, "error", err)

			return err
		}
	}
}

// Wait blocks until both stream pumps have finished, i.e. until the child's
// output streams reached EOF or the session was terminated. It returns the
// first unexpected read error, if any.
func (s *Session) Wait() error {
	if s.pumps == nil {
		return errors.ErrSessionNotStarted
	}

	return s.pumps.Wait()
}

// Output returns the channel of stdout chunks. The channel closes when the
// stream reaches EOF.
func (s *Session) Output() <-chan []byte {
	return s.output
}

// Stderr returns the channel of stderr chunks. Any data here is treated by
// the driver as a fatal signal for the in-flight command. In PTY mode the
// channel stays silent.
func (s *Session) Stderr() <-chan []byte {
	return s.errs
}

// Write appends a newline to text and writes it to the REPL's stdin.
// Returns ProcessIOError if the input stream is absent or closed. The write
// itself runs in a goroutine so a blocked pipe still honors ctx; on
// cancellation stdin is closed to unblock the writer.
func (s *Session) Write(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdin == nil {
		return &errors.ProcessIOError{Op: "write", Err: errors.ErrSessionNotStarted}
	}

	if s.stdinClosed {
		return &errors.ProcessIOError{Op: "write", Err: errors.ErrSessionClosed}
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	data := []byte(text + "\n")
	s.log.Debug("Writing to REPL", "bytes", len(data))

	done := make(chan error, 1)

	go func() {
		_, err := s.stdin.Write(data)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return &errors.ProcessIOError{Op: "write", Err: err}
		}

		return nil

	case <-ctx.Done():
		s.log.Debug("Context cancelled during write, closing stdin")

		_ = s.stdin.Close()
		s.stdinClosed = true

		select {
		case <-done:
		case <-time.After(1 * time.Second):
			s.log.Warn("Write goroutine did not exit after stdin close")
		}

		return ctx.Err()
	}
}

// Terminate requests process termination without waiting for exit
// confirmation. It is idempotent and never fails: terminating an unstarted
// or already-exited session is a no-op. Subsequent writes fail with
// ProcessIOError.
func (s *Session) Terminate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.terminated {
		return
	}

	s.terminated = true
	s.stdinClosed = true
	close(s.done)

	if s.stdin != nil {
		_ = s.stdin.Close()
	}

	if s.ptmx != nil {
		_ = s.ptmx.Close()
	}

	if s.cmd != nil && s.cmd.Process != nil {
		s.log.Debug("Killing REPL process", "pid", s.cmd.Process.Pid)

		_ = s.cmd.Process.Kill()

		// Reap in the background so the child does not linger as a
		// zombie; the exit status is deliberately not inspected.
		cmd := s.cmd

		go func() {
			_ = cmd.Wait()
		}()
	}
}
