package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-flappy/internal/config"
	"github.com/vovakirdan/space-flappy/internal/core"
	"github.com/vovakirdan/space-flappy/internal/games/flappy"
)

// newLogger creates the program logger writing to w at the given level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "spaceflappy",
		Level:           lvl,
	})
	return logger, nil
}

// openLogFile opens path for appending. An empty path discards logs.
func openLogFile(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

// withLogFile opens the log file, runs fn with it, and closes it on every
// return path.
func withLogFile(path string, fn func(io.Writer) error) error {
	out, closeLog, err := openLogFile(path)
	if err != nil {
		return err
	}
	runErr := fn(out)
	if err := closeLog(); err != nil && runErr == nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return runErr
}

// loadGame loads the config and builds a game from it.
func loadGame(logger *log.Logger) (*flappy.Game, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	logger.Info("config loaded", "source", source)
	return flappy.New(cfg), nil
}

// runtimeConfig builds per-run values from the global flags.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	return rc
}

// fail prints the error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
