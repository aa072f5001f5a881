// Package config loads cubesim settings from flags, environment and an
// optional TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/simulator"
)

// EnvPrefix is the prefix of environment overrides, e.g. CUBESIM_SIZE.
const EnvPrefix = "CUBESIM"

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds application configuration.
type Config struct {
	Size           int    `mapstructure:"size"`
	ScrambleLength int    `mapstructure:"scramble_length"`
	UndoMode       string `mapstructure:"undo_mode"`
	CaseToggled    bool   `mapstructure:"case_toggled"`
	HistoryLimit   int    `mapstructure:"history_limit"`
	LogFile        string `mapstructure:"log_file"`
	LogLevel       string `mapstructure:"log_level"`
	TranscriptDir  string `mapstructure:"transcript_dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Size:           3,
		ScrambleLength: simulator.DefaultScrambleLength,
		UndoMode:       string(simulator.UndoErase),
		HistoryLimit:   10,
		LogLevel:       "info",
	}
}

// DefaultPath returns the config file looked up when no path is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "cubesim", "config.toml")
}

// Load reads configuration. Later sources win: defaults, the TOML file at
// path (or DefaultPath when empty and present), CUBESIM_* environment
// variables, then any flag in flags that was set explicitly. Flag names use
// dashes where keys use underscores.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("size", def.Size)
	v.SetDefault("scramble_length", def.ScrambleLength)
	v.SetDefault("undo_mode", def.UndoMode)
	v.SetDefault("case_toggled", def.CaseToggled)
	v.SetDefault("history_limit", def.HistoryLimit)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("transcript_dir", def.TranscriptDir)

	v.SetConfigType("toml")
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if !slices.Contains(knownKeys, key) {
				return
			}
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
			}
		})
		if bindErr != nil {
			return Config{}, bindErr
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

var knownKeys = []string{
	"size", "scramble_length", "undo_mode", "case_toggled",
	"history_limit", "log_file", "log_level", "transcript_dir",
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Size < cube.MinSize {
		return fmt.Errorf("%w: size %d is below %d", ErrInvalidConfig, c.Size, cube.MinSize)
	}
	if c.ScrambleLength < 0 {
		return fmt.Errorf("%w: scramble_length %d is negative", ErrInvalidConfig, c.ScrambleLength)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history_limit %d is negative", ErrInvalidConfig, c.HistoryLimit)
	}
	switch simulator.UndoMode(c.UndoMode) {
	case simulator.UndoErase, simulator.UndoAppendInverse:
	default:
		return fmt.Errorf("%w: undo_mode %q (want %q or %q)", ErrInvalidConfig,
			c.UndoMode, simulator.UndoErase, simulator.UndoAppendInverse)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// SimulatorOptions converts the settings that affect the simulator.
func (c Config) SimulatorOptions() []simulator.Option {
	return []simulator.Option{
		simulator.WithUndoMode(simulator.UndoMode(c.UndoMode)),
		simulator.WithScrambleLength(c.ScrambleLength),
	}
}
