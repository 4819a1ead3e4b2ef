package replcli

import (
	"fmt"
	"os"

	"github.com/wagiedev/replkit-go/internal/config"
)

// BuildArgs constructs the command line arguments for the REPL binary.
func BuildArgs(cfg *config.Config) []string {
	if cfg.Flags == nil {
		return config.DefaultFlags()
	}

	args := make([]string, len(cfg.Flags))
	copy(args, cfg.Flags)

	return args
}

// BuildEnvironment constructs the environment for the REPL process: the
// caller's environment plus any session-specific overrides.
func BuildEnvironment(cfg *config.Config) []string {
	env := os.Environ()

	for key, value := range cfg.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}

	return env
}
