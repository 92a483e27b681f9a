package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blocks/internal/audio"
	"github.com/vovakirdan/blocks/internal/core"
	"github.com/vovakirdan/blocks/internal/platform/tui"
	"github.com/vovakirdan/blocks/internal/storage"
)

var (
	flagStartLevel int
	flagSelect     bool
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play blocks",
	Long: `Start a game in the terminal.

Controls:
  Space          - Start / launch the ball / resume
  Left/A/H       - Move paddle left (hold to accelerate)
  Right/D/L      - Move paddle right (hold to accelerate)
  P/Esc          - Pause
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Slower ball, faster paddle
  normal - Values from the configuration
  hard   - Faster ball, slower paddle

Examples:
  blocks play
  blocks play --level 3
  blocks play --select          # Pick the start level from a list
  blocks play --difficulty hard --mute
  blocks play --config ./my-levels.yaml --log ./blocks.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Level index to start at")
	playCmd.Flags().BoolVarP(&flagSelect, "select", "s", false, "Pick the start level interactively")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagStartLevel < 0 {
		fmt.Fprintf(os.Stderr, "Error: level must not be negative, got %d\n", flagStartLevel)
		os.Exit(1)
	}

	levels, err := loadLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("blocks", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagSelect {
		index, ok, selErr := tui.RunLevelSelect(levels, width, height)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User quit the picker
		if !ok {
			return
		}
		flagStartLevel = index
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var sounds tui.SoundPlayer = audio.Nop{}
	if !flagMute {
		player := audio.NewPlayer(logger)
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer player.Close()
		}
		sounds = player
	}

	logger.Info("session started", "level", flagStartLevel, "difficulty", flagDifficulty)

	runErr := tui.Run(tui.Options{
		Levels:     levels,
		StartLevel: flagStartLevel,
		Store:      store,
		Sounds:     sounds,
		Logger:     logger,
		Player:     os.Getenv("USER"),
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
