package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-flappy/internal/platform/device"
	"github.com/vovakirdan/space-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Click  - Flap (also starts and restarts)
  Enter        - Start / restart
  Ctrl+S       - Save a text screenshot to ~/.spaceflappy/screenshots
  Q/Ctrl+C     - Quit

The terminal is used for the game, so logs are only written when
--log-file is set.

Examples:
  spaceflappy play
  spaceflappy play --fps 30
  spaceflappy play --seed 42 --log-file ./flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := withLogFile(flagLogFile, playTerminal); err != nil {
		fail(err)
	}
}

// playTerminal runs the terminal host, logging to out.
func playTerminal(out io.Writer) error {
	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		return err
	}

	game, err := loadGame(logger)
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := runtimeConfig()
	rc.TouchPrimary = device.TouchPrimary(device.Current(0, false))
	logger.Debug("terminal", "cols", width, "rows", height, "fps", rc.TickRate)

	if err := tui.Run(game, rc, width, height, logger); err != nil {
		logger.Error("terminal host", "error", err)
		return err
	}
	return nil
}
