// flappy is a terminal Flappy Bird clone.
//
// Usage:
//
//	flappy play              - Play in the local terminal
//	flappy scores            - Show the high score table
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible pipe heights
//	--db <path>     - Set database path (default: ~/.flappy/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `A terminal Flappy Bird clone. Tap to flap, thread the pipes,
chase the leaderboard.

Available commands:
  play     - Play in the local terminal
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  flappy play
  flappy play --seed 42
  flappy scores
  flappy serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
