// blocks is a breakout game for the terminal.
//
// Usage:
//
//	blocks play              - Play locally
//	blocks levels            - List level layouts and ball speeds
//	blocks scores            - Show high scores
//	blocks serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.blocks/scores.db)
//	--config <path>   - Load game configuration from a YAML file
//	--log <path>      - Write logs to a file
//	--difficulty <p>  - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blocks/internal/config"
	"github.com/vovakirdan/blocks/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagLogPath    string
	flagLogLevel   string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - breakout in your terminal",
	Long: `Blocks is a breakout game for the terminal. Clear every block with the
ball to move on to the next level; every third level the ball gets faster.

Available commands:
  play     - Play locally
  levels   - List level layouts and ball speeds
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  blocks play
  blocks play --level 3 --difficulty hard
  blocks levels --config ./my-levels.yaml
  blocks serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blocks/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadLevels builds the level generator from the configuration flags.
func loadLevels() (*breakout.Generator, error) {
	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyBlocksPreset(&cfg, preset)

	return breakout.NewGenerator(cfg)
}
