// tetris is a configurable terminal tetris.
//
// Usage:
//
//	tetris play              - Play in the current terminal
//	tetris config init       - Write a default config file
//	tetris config show       - Print the effective configuration
//	tetris config check      - Validate a config file
//	tetris scores            - Show high scores
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path> - Config file (default: ./tetris.conf, then ~/.tetris/tetris.conf)
//	--db <path>     - Scores database path (default: ~/.tetris/scores.db)
//	--seed <value>  - RNG seed for reproducible piece sequences
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal tetris with a plain-text config file controlling the board,
key bindings, colors, and play mode.

Available commands:
  play     - Play in the current terminal
  config   - Manage the config file (init, show, check)
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  tetris play
  tetris play --config ./custom.conf
  tetris config init
  tetris scores --interactive
  tetris serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
