package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvTarget, "")
	t.Setenv(EnvFlags, "")
	t.Setenv(EnvTestDir, "")

	cfg := FromEnv()

	require.Empty(t, cfg.ExecPath)
	require.Equal(t, []string{"-batch"}, cfg.Flags)
	require.Equal(t, DefaultTestDir, cfg.TestDir)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvTarget, "/opt/limbo/limbo")
	t.Setenv(EnvFlags, "-q  --no-color")
	t.Setenv(EnvTestDir, "out")

	cfg := FromEnv()

	require.Equal(t, "/opt/limbo/limbo", cfg.ExecPath)
	require.Equal(t, []string{"-q", "--no-color"}, cfg.Flags)
	require.Equal(t, "out", cfg.TestDir)
}

func TestOutputFilePath(t *testing.T) {
	cfg := &Config{TestDir: "testing"}
	require.Equal(t, filepath.Join("testing", "shell_output.txt"), cfg.OutputFilePath())

	// Zero value falls back to the default directory.
	require.Equal(
		t,
		filepath.Join(DefaultTestDir, "shell_output.txt"),
		(&Config{}).OutputFilePath(),
	)
}
