package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra-arcade/internal/registry"
	"github.com/vovakirdan/tetra-arcade/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
	flagScoresYes    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Without a variant, summarize every variant that has saved games.
With one, list its best games.

Examples:
  tetra scores
  tetra scores tetris
  tetra scores tetris_plus --limit 25 --player alice
  tetra scores tetris --clear --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of scores to show (0 for all)")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Only show this player's games (use \"\" for local play)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every saved game of the variant")
	scoresCmd.Flags().BoolVar(&flagScoresYes, "yes", false, "Confirm --clear")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagScoresClear && len(args) == 0 {
		return errors.New("--clear needs a variant")
	}
	if flagScoresClear && !flagScoresYes {
		return errors.New("--clear deletes scores permanently; pass --yes to confirm")
	}

	var game registry.Game
	if len(args) == 1 {
		g, err := registry.Create(args[0])
		if err != nil {
			return fmt.Errorf("%w (run 'tetra list' to see available variants)", err)
		}
		game = g
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case game == nil:
		return printSummary(out, store)
	case flagScoresClear:
		n, err := store.ClearScores(game.ID())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Deleted %d %s games.\n", n, game.Title())
		return nil
	}

	q := storage.ScoreQuery{GameID: game.ID(), Limit: flagScoresLimit}
	if cmd.Flags().Changed("player") {
		q.Player = flagScoresPlayer
	}
	return printScores(out, store, game, q)
}

func printSummary(out io.Writer, store *storage.Store) error {
	all, err := store.AllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Fprintln(out, "No games recorded yet. Run 'tetra play' to start one.")
		return nil
	}

	fmt.Fprintf(out, "  %-14s  %6s  %8s  %8s  %6s  %s\n", "Variant", "Games", "Best", "Average", "Lines", "Last played")
	for _, st := range all {
		fmt.Fprintf(out, "  %-14s  %6d  %8d  %8.0f  %6d  %s\n",
			st.GameID, st.GamesCount, st.HighScore, st.AvgScore, st.TotalLines,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printScores(out io.Writer, store *storage.Store, game registry.Game, q storage.ScoreQuery) error {
	scores, err := store.Scores(q)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := "High Scores - " + game.Title()
	if q.Player != "" {
		title += " - " + q.Player
	}
	fmt.Fprintln(out, title)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "Play 'tetra play %s' to set the first high score!\n", game.ID())
		return nil
	}

	fmt.Fprintf(out, "  %4s  %8s  %6s  %-12s  %s\n", "Rank", "Score", "Lines", "Player", "Date")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "local"
		}
		fmt.Fprintf(out, "  %4d  %8d  %6d  %-12s  %s\n",
			i+1, e.Score, e.Lines, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(game.ID()); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.0f  Best lines: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLines)
	}
	return nil
}
