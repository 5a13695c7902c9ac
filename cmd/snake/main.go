// snake is a greedy snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play the game
//	snake config             - Print the effective configuration as YAML
//	snake rules              - Print the rules and controls
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Path to a custom config YAML
//	--speed <preset>    - Starting speed: slow, normal, fast
//	--log-file <path>   - Write logs to a file (the TUI owns the terminal)
//	--log-level <lvl>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagSpeed    string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Greedy Snake - eat, grow, don't bite yourself",
	Long: `Greedy Snake is a terminal snake game with five speed tiers,
hold-to-boost, golden apples and a bit of encouragement along the way.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration
  rules    - Print the rules and controls

Examples:
  snake
  snake play --speed fast
  snake play --seed 42 --log-file snake.log --log-level debug
  snake config --config ./my-snake.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Starting speed preset: slow, normal, fast")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(rulesCmd)
}
