// antarctic-window runs Antarctic Adventure in a desktop window.
//
// Usage:
//
//	antarctic-window [--seed 42] [--scale 1.5] [--config ./antarctic.yaml]
//
// Rounds are recorded to the same journal as the terminal game, so
// 'antarctic runs' and 'antarctic replay' work on them too.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/antarctic/internal/config"
	"github.com/vovakirdan/antarctic/internal/core"
	"github.com/vovakirdan/antarctic/internal/games/antarctic"
	"github.com/vovakirdan/antarctic/internal/logfile"
	"github.com/vovakirdan/antarctic/internal/platform/window"
	"github.com/vovakirdan/antarctic/internal/storage"
)

var (
	flagSeed     int64
	flagScale    float64
	flagConfig   string
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
	flagNoRecord bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "antarctic-window",
	Short: "Antarctic Adventure in a desktop window",
	Long: `Play Antarctic Adventure in a window.

Controls:
  Left/A, Right/D  - Steer
  Space/Up/W       - Jump
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.antarctic/journal.db", "Path to the round journal database")
	rootCmd.Flags().StringVar(&flagLogPath, "log", "~/.antarctic/antarctic.log", "Path to the log file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not record rounds to the journal")
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadAntarctic(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := logfile.Open(flagLogPath, flagLogLevel, "antarctic-window")
	if err != nil {
		return err
	}
	defer closeLog()

	opts := window.Options{
		Width:  cfg.Screen.Width,
		Height: cfg.Screen.Height,
		Scale:  flagScale,
		Logger: logger,
	}

	if !flagNoRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open journal: %v\n", err)
			logger.Warn("could not open journal, rounds will not be recorded", "error", err)
		} else {
			defer store.Close()
			opts.Journal = store
			if opts.ConfigYAML, err = config.Marshal(cfg); err != nil {
				logger.Warn("could not encode config for the journal", "error", err)
			}
		}
	}

	runtime := core.RuntimeConfig{
		ScreenW:  cfg.Screen.Width,
		ScreenH:  cfg.Screen.Height,
		TickRate: 60,
		Seed:     flagSeed,
	}
	if err := window.Run(antarctic.New(cfg), runtime, opts); err != nil {
		logger.Error("window session failed", "error", err)
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
