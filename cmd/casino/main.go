// casino is a terminal card table for playing Cassino against the computer.
//
// Usage:
//
//	casino list              - List available games
//	casino play <game>       - Play a game
//	casino serve             - Start SSH server for remote play
//	casino scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.casino/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/lindabaloyi/official-casino-game-sub001/internal/games/cassino"
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
	Use:   "casino",
	Short: "Casino - Play Cassino card games in your terminal",
	Long: `Casino is a terminal card table for the Cassino family of games.
Drop cards on the table to capture, stack, or build against a computer
opponent.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  serve    - Start SSH server for remote play
  scores   - View high scores and round history

Examples:
  casino list
  casino play cassino
  casino play cassino --difficulty hard
  casino serve --ssh :2222
  casino scores cassino`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.casino/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
