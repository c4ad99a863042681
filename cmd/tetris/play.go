package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/game"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// localConfigName is picked up from the working directory when no --config
// flag is given.
const localConfigName = "tetris.conf"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play tetris in the current terminal",
	Long: `Start a game using the configured board, colors, and key bindings.

Default controls:
  Left/Right  - Move the piece
  Shift+Left  - Rotate clockwise
  Up          - Rotate anticlockwise
  Down        - Soft drop
  Space       - Hard drop
  C           - Hold
  Esc         - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

All of these can be rebound in the config file; run 'tetris config init'
to write one with the defaults spelled out.

Examples:
  tetris play
  tetris play --config ./custom.conf
  tetris play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfigOrExit()

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.FPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game.New(cfg), store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfigOrExit resolves and parses the config file. Parse failures are
// printed in the file's own error format and end the process; a missing file
// is created with the defaults.
func loadConfigOrExit() *config.Config {
	path, explicit := resolveConfigPath()

	cfg, err := config.Load(path)
	if err == nil {
		return cfg
	}

	var parseErr *config.ParseError
	if errors.As(err, &parseErr) {
		fmt.Fprintln(os.Stderr, parseErr)
		os.Exit(1)
	}

	if errors.Is(err, os.ErrNotExist) && !explicit {
		cfg = config.Default()
		if writeErr := writeDefaultConfig(path, cfg); writeErr != nil {
			log.Warn("could not write default config", "path", path, "error", writeErr)
		} else {
			log.Warn("config file not found, wrote defaults", "path", path)
		}
		return cfg
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
	return nil
}

// resolveConfigPath picks the config file: the --config flag, then
// ./tetris.conf if present, then ~/.tetris/tetris.conf. Reports whether the
// user named the path explicitly.
func resolveConfigPath() (path string, explicit bool) {
	if flagConfig != "" {
		return flagConfig, true
	}
	if _, err := os.Stat(localConfigName); err == nil {
		return localConfigName, false
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return localConfigName, false
	}
	return filepath.Join(home, ".tetris", localConfigName), false
}

func writeDefaultConfig(path string, cfg *config.Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return config.WriteFile(cfg, path)
}
