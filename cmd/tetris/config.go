package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
	Long: `Inspect and manage the tetris config file.

The file is plain text, one 'setting = value' per line; lines starting
with '#' are comments. Any setting left out keeps its default.

Examples:
  tetris config init
  tetris config show
  tetris config check --config ./custom.conf`,
}

var flagForce bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	Run:   runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Parse the config file and print the resulting settings, defaults
filled in and cross-field rules applied.`,
	Args: cobra.NoArgs,
	Run:  runConfigShow,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a config file",
	Args:  cobra.NoArgs,
	Run:   runConfigCheck,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path, _ := resolveConfigPath()

	if _, err := os.Stat(path); err == nil && !flagForce {
		fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", path)
		os.Exit(1)
	}

	if err := writeDefaultConfig(path, config.Default()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote default config to %s\n", path)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg := loadConfigOrExit()
	fmt.Print(cfg)
}

func runConfigCheck(cmd *cobra.Command, args []string) {
	path, _ := resolveConfigPath()

	_, err := config.Load(path)
	if err == nil {
		fmt.Printf("%s: OK\n", path)
		return
	}

	var parseErr *config.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintln(os.Stderr, parseErr)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
