// spaceflappy is a one-button arcade game: keep the chick clear of the
// obstacles drifting through space.
//
// Usage:
//
//	spaceflappy play      - Play in the terminal
//	spaceflappy window    - Play in a desktop window
//	spaceflappy config    - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Log file for terminal play (default: none)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spaceflappy",
	Short: "Space Flappy Bird - help the chick navigate through space",
	Long: `Space Flappy Bird is a one-button arcade game. Flap to keep the chick
in the air and steer it through the gaps between drifting obstacles.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  spaceflappy play
  spaceflappy play --seed 42 --log-file ./flappy.log
  spaceflappy window
  spaceflappy config --config ./my-flappy.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file during terminal play")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
