package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/antarctic/internal/config"
	"github.com/vovakirdan/antarctic/internal/core"
	"github.com/vovakirdan/antarctic/internal/games/antarctic"
	"github.com/vovakirdan/antarctic/internal/replay"
	"github.com/vovakirdan/antarctic/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a recorded round",
	Long: `Re-run a recorded round from its seed and inputs without a display,
and check that the recomputed score and tick count match the recording.

With --watch the round is played back in the terminal instead.

Examples:
  antarctic replay 7
  antarctic replay 7 --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the round back in the terminal")
}

// roundConfig returns the configuration a round was recorded with, or the
// current one for rounds recorded without it.
func roundConfig(r replay.Round) (config.AntarcticConfig, error) {
	if len(r.Config) == 0 {
		return config.LoadAntarctic("")
	}
	cfg, err := config.Parse(r.Config)
	if err != nil {
		return config.AntarcticConfig{}, fmt.Errorf("recorded config: %w", err)
	}
	return cfg, nil
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid round ID %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		os.Exit(1)
	}
	rec, err := store.RoundByID(id)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading round: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: no round with ID %d\n", id)
		fmt.Fprintln(os.Stderr, "Run 'antarctic runs' to see recorded rounds.")
		os.Exit(1)
	}

	cfg, err := roundConfig(rec.Round)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagWatch {
		if err := watchRound(cfg, rec.Round); err != nil {
			fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger, closeLog := mustLogger()
	defer closeLog()

	runtime := core.RuntimeConfig{TickRate: flagFPS}
	mismatches := replay.Verify(antarctic.New(cfg), runtime, rec.Round)

	fmt.Printf("Round %d: seed %d, %d steps, %d inputs, outcome %s\n",
		rec.ID, rec.Seed, rec.Steps, rec.FrameCount, rec.Outcome)
	fmt.Printf("Recorded score %d over %d ticks\n", rec.Score, rec.Ticks)

	if len(mismatches) == 0 {
		logger.Info("replay verified", "id", rec.ID, "score", rec.Score, "ticks", rec.Ticks)
		fmt.Println("Replay matches the recording.")
		return
	}

	logger.Warn("replay diverged", "id", rec.ID, "mismatches", len(mismatches))
	fmt.Println("Replay does NOT match the recording:")
	for _, m := range mismatches {
		fmt.Printf("  %s\n", m)
	}
	closeLog()
	os.Exit(2)
}
