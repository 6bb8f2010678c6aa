package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows a list of all variants registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available variants:")
	fmt.Fprintln(out)

	maxIDLen := len("ID")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-20s  %s\n", maxIDLen, "ID", "Title", "Pieces")
	fmt.Fprintf(out, "  %-*s  %-20s  %s\n", maxIDLen, "--", "-----", "------")

	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %-20s  %d\n", maxIDLen, g.ID, g.Title, g.Pieces)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tetra play <id>' to play a variant.")
}
