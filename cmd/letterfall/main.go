// letterfall is a terminal word game: letters rain down the screen and you
// catch the ones your words need before they hit the floor.
//
// Usage:
//
//	letterfall menu              - Pick a topic interactively
//	letterfall play <topic>      - Play a round of the given topic
//	letterfall topics            - List available topics
//	letterfall scores            - Show round history and per-topic stats
//	letterfall serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.letterfall/rounds.db)
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
	Use:   "letterfall",
	Short: "Letterfall - catch falling letters to spell words",
	Long: `Letterfall is a terminal word game. Each round gives you five words
from a topic; letters rain down the playfield and you catch the ones the
active word needs. Miss a needed letter and it costs a credit; run out of
credits and the round is lost.

Available commands:
  menu     - Interactive topic picker
  play     - Play a round of a specific topic
  topics   - List available topics
  scores   - View round history and stats
  serve    - Start SSH server for remote play

Examples:
  letterfall menu
  letterfall play animals
  letterfall play space --difficulty hard
  letterfall serve --ssh :2222
  letterfall scores animals`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.letterfall/rounds.db", "Path to rounds database")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// currentUser returns the local username for round records.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
