// antarctic is a pseudo-3D penguin runner for the terminal.
//
// Usage:
//
//	antarctic play              - Play in the terminal
//	antarctic runs              - Browse recorded rounds
//	antarctic replay <id>       - Re-simulate a recorded round and check it
//	antarctic config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set journal path (default: ~/.antarctic/journal.db)
//	--log <path>         - Set log file (default: ~/.antarctic/antarctic.log)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/antarctic/internal/logfile"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "antarctic",
	Short: "Antarctic Adventure - a penguin runner in your terminal",
	Long: `Antarctic Adventure puts a penguin on a perspective track. Steer it,
jump over ice holes and catch the fish that leap out of them.

Available commands:
  play     - Play in the terminal
  runs     - Browse recorded rounds
  replay   - Re-simulate a recorded round
  config   - Print the default configuration

Examples:
  antarctic play
  antarctic play --seed 42 --config ./my-antarctic.yaml
  antarctic runs --limit 10
  antarctic replay 7 --watch`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.antarctic/journal.db", "Path to the round journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.antarctic/antarctic.log", "Path to the log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// mustLogger opens the log file or exits.
func mustLogger() (*log.Logger, func()) {
	logger, closeLog, err := logfile.Open(flagLogPath, flagLogLevel, "antarctic")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeLog
}
