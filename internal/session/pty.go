package session

import (
	"os/exec"

	"github.com/creack/pty"
	"golang.org/x/sync/errgroup"

	"github.com/wagiedev/replkit-go/internal/errors"
)

// startPTY launches the REPL on a pseudo-terminal. The single pty file acts
// as both input and output stream; the kernel merges the child's stderr into
// it, so the stderr channel stays silent and stderr-failure detection does
// not apply in this mode. Expect the terminal to echo written commands back
// into the output.
func (s *Session) startPTY(cmd *exec.Cmd) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return &errors.ProcessIOError{Op: "start pty", Err: err}
	}

	s.cmd = cmd
	s.ptmx = ptmx
	s.stdin = ptmx
	s.output = make(chan []byte, chanCapacity)

	// Never written, never closed: selects over it simply never fire.
	s.errs = make(chan []byte)

	s.pumps = &errgroup.Group{}
	s.pumps.Go(func() error { return s.pump(ptmx, s.output, "pty") })

	return nil
}
