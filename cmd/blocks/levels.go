package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocks/internal/games/breakout"
)

const shownCycles = 4

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List level layouts and ball speeds",
	Long: `Shows the registered block layouts and the ball speed of the first
level cycles. Levels repeat the configured layouts in order; each full cycle
after the second speeds the ball up.

Examples:
  blocks levels
  blocks levels --difficulty hard
  blocks levels --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg := levels.Config()

	fmt.Printf("Layouts (%d used per cycle):\n", cfg.Levels.Count)
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, l := range levels.Layouts() {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-7s  %-*s  %s\n", "Pattern", maxNameLen, "Name", "Blocks")
	fmt.Printf("  %-7s  %-*s  %s\n", "-------", maxNameLen, "----", "------")
	for _, l := range levels.Layouts() {
		note := ""
		if l.Index >= cfg.Levels.Count {
			note = "  (unused)"
		}
		fmt.Printf("  %-7d  %-*s  %d%s\n", l.Index, maxNameLen, l.Name, len(l.Pattern()), note)
	}

	fmt.Println()
	fmt.Println("Ball speed:")
	fmt.Println()
	for cycle := range shownCycles {
		first := cycle * cfg.Levels.Count
		fmt.Printf("  levels %2d-%-2d  %.1f\n", first, first+cfg.Levels.Count-1, breakout.BallSpeed(cfg, cycle))
	}
	fmt.Println()
	fmt.Println("Run 'blocks play --level <n>' to start at a level.")
}
