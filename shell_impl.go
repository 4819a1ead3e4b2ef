package replkit

import (
	"context"

	"github.com/wagiedev/replkit-go/internal/config"
	"github.com/wagiedev/replkit-go/internal/driver"
	rkerrors "github.com/wagiedev/replkit-go/internal/errors"
	"github.com/wagiedev/replkit-go/internal/session"
)

// shellWrapper wires the internal session and driver behind the public
// Shell interface.
type shellWrapper struct {
	cfg  *config.Config
	sess *session.Session
	drv  *driver.Driver
}

// Compile-time check that *shellWrapper implements the Shell interface.
var _ Shell = (*shellWrapper)(nil)

// Start spawns the REPL subprocess.
func (s *shellWrapper) Start(ctx context.Context, opts ...Option) error {
	if s.sess != nil {
		return rkerrors.ErrSessionAlreadyStarted
	}

	cfg := applyOptions(opts)
	sess := session.New(cfg.Logger, cfg)

	if err := sess.Start(ctx); err != nil {
		return err
	}

	s.cfg = cfg
	s.sess = sess
	s.drv = driver.New(cfg.Logger, sess, cfg)

	return nil
}

// Execute sends a command and returns its framed response.
func (s *shellWrapper) Execute(ctx context.Context, command string) (string, error) {
	if s.drv == nil {
		return "", &rkerrors.ProcessIOError{Op: "execute", Err: rkerrors.ErrSessionNotStarted}
	}

	return s.drv.Execute(ctx, command)
}

// SendRaw writes a command without waiting for a response.
func (s *shellWrapper) SendRaw(ctx context.Context, command string) error {
	if s.drv == nil {
		return &rkerrors.ProcessIOError{Op: "write", Err: rkerrors.ErrSessionNotStarted}
	}

	return s.drv.SendRaw(ctx, command)
}

// OutputFilePath returns the conventional redirected-output target.
func (s *shellWrapper) OutputFilePath() string {
	cfg := s.cfg
	if cfg == nil {
		cfg = config.FromEnv()
	}

	return cfg.OutputFilePath()
}

// Quit shuts the session down.
func (s *shellWrapper) Quit(ctx context.Context) error {
	if s.drv == nil {
		return nil
	}

	return s.drv.Quit(ctx)
}
