package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vmordasov/flappy-tui/internal/config"
	"github.com/vmordasov/flappy-tui/internal/core"
	"github.com/vmordasov/flappy-tui/internal/game"
	"github.com/vmordasov/flappy-tui/internal/platform/tui"
	"github.com/vmordasov/flappy-tui/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W  - Start the run / flap
  P/Esc       - Pause
  R           - Back to the start screen (after game over)
  Tab         - High score table
  Q/Ctrl+C    - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-tuning.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Read the terminal size once; the model handles live resizes.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	g := game.New(gameCfg, cfg.Seed)
	runErr := tui.Run(g, store, cfg, gameCfg, playerName())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName identifies the local player on the leaderboard.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
