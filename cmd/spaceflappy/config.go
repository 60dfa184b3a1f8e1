package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Configs are searched in this order:
  1. --config <path>
  2. ~/.spaceflappy/config.yaml
  3. ./configs/spaceflappy.yaml
  4. Built-in defaults

Examples:
  spaceflappy config
  spaceflappy config --config ./my-flappy.yaml > ./configs/spaceflappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fail(err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail(err)
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
	fmt.Print(string(data))
}
