package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-arcade/internal/registry"
	"github.com/vovakirdan/tile-arcade/internal/storage"
)

var (
	flagShowResults bool
	flagClearScores bool
	flagScoreLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.
Without a game, shows a summary of every game played so far.

Examples:
  arcade scores
  arcade scores colormatch
  arcade scores isomap --results
  arcade scores colormatch --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagShowResults, "results", false, "Also list recent results with outcome and player")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores and results for the game")
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of entries to show")
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		runScoresSummary()
		return
	}
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
	} else {
		// Print header
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}

		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d   Played: %d   Wins: %d   Losses: %d\n",
				stats.HighScore, stats.GamesCount, stats.Wins, stats.Losses)
		}
	}

	if flagShowResults {
		printResults(store, gameID)
	}
}

func printResults(store *storage.Store, gameID string) {
	results, err := store.RecentResults(gameID, flagScoreLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("Recent results")
	fmt.Println()
	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-12s  %-12s  %-9s  %-7s  %-8s  %s\n", "Date", "Game", "Player", "Outcome", "Score", "Attempts", "Time")
	fmt.Printf("  %-16s  %-12s  %-12s  %-9s  %-7s  %-8s  %s\n", "----", "----", "------", "-------", "-----", "--------", "----")
	for _, r := range results {
		fmt.Printf("  %-16s  %-12s  %-12s  %-9s  %-7d  %-8d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.GameID, r.Player, r.Outcome, r.Score, r.Attempts,
			r.Duration.Round(time.Second))
	}
}

// runScoresSummary prints one line per played game and the latest runs.
func runScoresSummary() {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}

	fmt.Println("Arcade summary")
	fmt.Println()
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
	} else {
		fmt.Printf("  %-12s  %-6s  %-8s  %-8s  %s\n", "Game", "Games", "Best", "Average", "Last played")
		fmt.Printf("  %-12s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")
		for _, g := range registry.List() {
			st, ok := all[g.ID]
			if !ok {
				continue
			}
			fmt.Printf("  %-12s  %-6d  %-8d  %-8.0f  %s\n",
				g.ID, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
		}
	}

	printResults(store, "")
}
