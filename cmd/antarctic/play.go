package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/antarctic/internal/config"
	"github.com/vovakirdan/antarctic/internal/core"
	"github.com/vovakirdan/antarctic/internal/games/antarctic"
	"github.com/vovakirdan/antarctic/internal/platform/tui"
	"github.com/vovakirdan/antarctic/internal/replay"
	"github.com/vovakirdan/antarctic/internal/storage"
)

var (
	flagConfig   string
	flagNoRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Steer (keep the key down)
  Space/Up/W       - Jump
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Every round is recorded to the journal unless --no-record is given.

Examples:
  antarctic play
  antarctic play --seed 42
  antarctic play --config ./my-antarctic.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record rounds to the journal")
}

// terminalRuntime builds the runtime config from the terminal size and global flags.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// tuiOptions builds the terminal options shared by play and watch.
func tuiOptions(cfg config.AntarcticConfig) tui.Options {
	return tui.Options{
		VirtualW:  cfg.Screen.Width,
		VirtualH:  cfg.Screen.Height,
		HoldTicks: cfg.Input.HoldTicks,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadAntarctic(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := mustLogger()
	defer closeLog()

	opts := tuiOptions(cfg)
	opts.Logger = logger

	// Open the journal; the game still works without it
	var store *storage.Store
	if !flagNoRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open journal: %v\n", err)
			logger.Warn("could not open journal, rounds will not be recorded", "error", err)
			store = nil
		}
	}
	if store != nil {
		opts.Journal = store
		if opts.ConfigYAML, err = config.Marshal(cfg); err != nil {
			logger.Warn("could not encode config for the journal", "error", err)
		}
	}

	runErr := tui.Run(antarctic.New(cfg), terminalRuntime(), opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("terminal session failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// watchRound plays a recorded round back in the terminal.
func watchRound(cfg config.AntarcticConfig, round replay.Round) error {
	logger, closeLog := mustLogger()
	defer closeLog()

	opts := tuiOptions(cfg)
	opts.Logger = logger
	opts.Watch = &round
	return tui.Run(antarctic.New(cfg), terminalRuntime(), opts)
}
