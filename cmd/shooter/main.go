// shooter is a vertical space shooter for the terminal.
//
// Usage:
//
//	shooter play      - Play the game
//	shooter config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write logs to a file (default: no logs)
//	--log-level <level>  - debug, info, warn or error (default: info)
//
// Every flag default may also come from a SHOOTER_* environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(env).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree with flag defaults taken from env.
func newRootCmd(env config.Env) *cobra.Command {
	root := &cobra.Command{
		Use:   "shooter",
		Short: "Space Shooter - dodge and shoot asteroids in your terminal",
		Long: `Space Shooter is a terminal arcade game. Steer your ship around the
bottom of the field and shoot the asteroids falling from above.
They come faster the longer you survive.

Available commands:
  play     - Play the game
  config   - Print the effective configuration

Examples:
  shooter play
  shooter play --difficulty hard
  shooter play --backend tcell --sound
  shooter config --difficulty easy`,
	}

	root.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	root.PersistentFlags().Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", env.LogFile, "Write logs to this file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")

	root.AddCommand(newPlayCmd(env))
	root.AddCommand(newConfigCmd(env))
	return root
}
