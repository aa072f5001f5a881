package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim/internal/simulator"
)

// isolate points the default config lookup at an empty directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("size", 3, "")
	fs.String("undo-mode", "erase", "")
	fs.String("log-level", "info", "")
	fs.Int("seed", 0, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	c, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, Default(), c)
	require.NoError(t, c.Validate())
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, `
size = 4
scramble_length = 30
undo_mode = "append-inverse"
case_toggled = true
transcript_dir = "/tmp/cubesim"
`)
	c, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, 4, c.Size)
	require.Equal(t, 30, c.ScrambleLength)
	require.Equal(t, "append-inverse", c.UndoMode)
	require.True(t, c.CaseToggled)
	require.Equal(t, "/tmp/cubesim", c.TranscriptDir)
	require.Equal(t, 10, c.HistoryLimit)
}

func TestLoadDefaultPath(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "cubesim")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("size = 5\n"), 0o644))

	c, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, 5, c.Size)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"), nil)
	require.Error(t, err)
}

func TestPrecedence(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "size = 4\nlog_level = \"warn\"\nhistory_limit = 3\n")
	t.Setenv("CUBESIM_SIZE", "5")
	t.Setenv("CUBESIM_LOG_LEVEL", "debug")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--size", "6"}))

	c, err := Load(path, fs)
	require.NoError(t, err)
	require.Equal(t, 6, c.Size, "flag beats env")
	require.Equal(t, "debug", c.LogLevel, "env beats file")
	require.Equal(t, 3, c.HistoryLimit, "file beats default")
	require.Equal(t, "erase", c.UndoMode, "unset flag keeps default")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"small size", func(c *Config) { c.Size = 1 }},
		{"negative scramble", func(c *Config) { c.ScrambleLength = -1 }},
		{"negative history", func(c *Config) { c.HistoryLimit = -2 }},
		{"undo mode", func(c *Config) { c.UndoMode = "rewind" }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			require.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestSimulatorOptions(t *testing.T) {
	c := Default()
	c.UndoMode = "append-inverse"
	c.ScrambleLength = 5

	sim, err := simulator.New(c.Size, c.SimulatorOptions()...)
	require.NoError(t, err)

	alg, err := sim.Scramble(0)
	require.NoError(t, err)
	require.Len(t, alg.Moves, 5)

	_, err = sim.Undo()
	require.NoError(t, err)
	require.Len(t, sim.History(), 2)
	require.True(t, sim.Cube().IsSolved())
}
