package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-flappy/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a window. The simulation advances once per display
frame unless --fps is given.

Controls:
  Space/Click/Tap  - Flap (also starts and restarts)
  Enter            - Start / restart
  Esc              - Quit

Examples:
  spaceflappy window
  spaceflappy window --scale 1.5
  spaceflappy window --fps 60 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the play field")
}

func runWindow(cmd *cobra.Command, _ []string) {
	if err := openWindow(cmd.Flags().Changed("fps")); err != nil {
		fail(err)
	}
}

// openWindow runs the window host. fpsSet reports whether --fps was given.
func openWindow(fpsSet bool) error {
	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	game, err := loadGame(logger)
	if err != nil {
		return err
	}

	opts := window.Options{Scale: flagScale}
	if fpsSet {
		opts.TPS = flagFPS
	}

	if err := window.Run(game, runtimeConfig(), opts, logger); err != nil {
		logger.Error("window host", "error", err)
		return err
	}
	return nil
}
