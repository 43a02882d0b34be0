package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var flagDefaults bool

func newConfigCmd(env config.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration the game would run with, after the config
file search and the difficulty preset, as YAML.

Search order:
  --config <path>
  ~/.arcade/configs/shooter.yaml
  ./configs/shooter.yaml
  built-in defaults

Examples:
  shooter config
  shooter config --difficulty hard
  shooter config --defaults > ~/.arcade/configs/shooter.yaml`,
		Args: cobra.NoArgs,
		Run:  runConfig,
	}

	cmd.Flags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", env.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
	return cmd
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
