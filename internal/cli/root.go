// Package cli implements the command-line interface for cubesim.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/config"
	"github.com/SeamusWaldron/cubesim/internal/simulator"
)

const version = "0.1.0"

var (
	// Global flags
	cfgFile string

	// Resolved in PersistentPreRunE
	cfg       config.Config
	logger    = discardLogger()
	logCloser io.Closer
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesim",
	Short: "N x N x N Rubik's Cube simulator",
	Long: `cubesim - A terminal Rubik's Cube simulator for any cube size from 2x2 up.

Type algorithms in standard notation (R U R' U', M2 E2 S2, r U x') and watch
the cube net update. Without a subcommand cubesim starts the interactive
session.`,
	Version:            version,
	SilenceUsage:       true,
	PersistentPreRunE:  loadConfig,
	PersistentPostRunE: closeLog,
	RunE:               runPlay,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	def := config.Default()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: "+config.DefaultPath()+")")
	flags.Int("size", def.Size, "Cube size N")
	flags.Int("scramble-length", def.ScrambleLength, "Moves in a scramble")
	flags.String("undo-mode", def.UndoMode, "Undo behavior: erase or append-inverse")
	flags.Bool("case-toggled", def.CaseToggled, "Start with letter case swapped")
	flags.Int("history-limit", def.HistoryLimit, "History lines shown in the session")
	flags.String("log-file", def.LogFile, "Write logs to this file (default: discard)")
	flags.String("log-level", def.LogLevel, "Log level: debug, info, warn, error")
	flags.String("transcript-dir", def.TranscriptDir, "Write a JSONL session transcript to this directory")
}

// loadConfig resolves configuration and opens the log for every command.
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	l, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger, logCloser = l, closer
	logger.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"size":    cfg.Size,
	}).Debug("Configuration loaded")
	return nil
}

func closeLog(cmd *cobra.Command, args []string) error {
	if logCloser != nil {
		return logCloser.Close()
	}
	return nil
}

// newSimulator creates a simulator from the resolved configuration.
func newSimulator(opts ...simulator.Option) (*simulator.Simulator, error) {
	all := append(cfg.SimulatorOptions(), simulator.WithLogger(logger))
	return simulator.New(cfg.Size, append(all, opts...)...)
}
