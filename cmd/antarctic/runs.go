package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/antarctic/internal/platform/tui"
	"github.com/vovakirdan/antarctic/internal/storage"
)

const gameID = "antarctic"

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded rounds",
	Long: `List the most recently recorded rounds, newest first.

In a terminal this opens an interactive browser; press Enter on a round to
watch it. With --plain, or when output is not a terminal, a plain table is
printed instead.

With --clear every recorded round is deleted instead.

Examples:
  antarctic runs
  antarctic runs --limit 5 --plain
  antarctic runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of rounds to list")
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the browser")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded rounds")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		os.Exit(1)
	}

	if flagClear {
		err = clearRuns(store)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		err = printRuns(store)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rt := terminalRuntime()
	selected, err := tui.RunRuns(store, gameID, "Antarctic Adventure", flagLimit, rt.ScreenW, rt.ScreenH)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if selected == 0 {
		store.Close()
		return
	}

	rec, err := store.RoundByID(selected)
	store.Close()
	if err != nil || rec == nil {
		fmt.Fprintf(os.Stderr, "Error loading round %d: %v\n", selected, err)
		os.Exit(1)
	}
	cfg, err := roundConfig(rec.Round)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := watchRound(cfg, rec.Round); err != nil {
		fmt.Fprintf(os.Stderr, "Error running replay: %v\n", err)
		os.Exit(1)
	}
}

// printRuns writes the recent rounds as a plain table.
func printRuns(store *storage.Store) error {
	entries, err := store.RecentRounds(gameID, flagLimit)
	if err != nil {
		return err
	}
	total, err := store.CountRounds(gameID)
	if err != nil {
		return err
	}

	fmt.Println("Recorded rounds - Antarctic Adventure")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'antarctic play' and your rounds will show up here.")
		return nil
	}

	// Print header
	fmt.Printf("  %-6s  %-8s  %-8s  %-8s  %-6s  %s\n", "ID", "Score", "Ticks", "Outcome", "Inputs", "Date")
	fmt.Printf("  %-6s  %-8s  %-8s  %-8s  %-6s  %s\n", "--", "-----", "-----", "-------", "------", "----")

	for _, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6d  %-8d  %-8d  %-8s  %-6d  %s\n", e.ID, e.Score, e.Ticks, e.Outcome, e.FrameCount, dateStr)
	}
	fmt.Println()
	fmt.Printf("Showing %d of %d recorded rounds.\n", len(entries), total)
	return nil
}

// clearRuns deletes every recorded round and reports how many went.
func clearRuns(store *storage.Store) error {
	n, err := store.CountRounds(gameID)
	if err != nil {
		return err
	}
	if err := store.ClearRounds(gameID); err != nil {
		return err
	}
	fmt.Printf("Deleted %d recorded rounds.\n", n)
	return nil
}
