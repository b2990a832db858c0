package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/letterfall/letterfall/internal/config"
	"github.com/letterfall/letterfall/internal/core"
	"github.com/letterfall/letterfall/internal/game"
	"github.com/letterfall/letterfall/internal/platform/tui"
	"github.com/letterfall/letterfall/internal/storage"
	"github.com/letterfall/letterfall/internal/topics"
)

var (
	flagConfig     string
	flagTopics     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <topic>",
	Short: "Play a round of the given topic",
	Long: `Start a round with the five words of the specified topic.

Controls:
  A/D, Left/Right - Move the catcher
  Space/Enter     - Catch at the catcher position
  Mouse click     - Catch at the pointer
  1-5             - Target a word
  P               - Pause
  R               - Restart (after the round ends)
  Q/Ctrl+C        - Quit

Difficulty presets:
  easy   - Slow letters, little noise, many credits
  normal - The default balance
  hard   - Fast letters, heavy noise, few credits

Examples:
  letterfall play animals
  letterfall play space --difficulty hard
  letterfall play food --config ./my-letterfall.yaml
  letterfall play animals --topics ./my-topics.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagTopics, "topics", "", "Path to custom topics YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	topicID := args[0]

	catalog, err := topics.Load(flagTopics)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading topics: %v\n", err)
		os.Exit(1)
	}

	topic, ok := catalog.Get(topicID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown topic %q\n", topicID)
		fmt.Fprintln(os.Stderr, "Run 'letterfall topics' to see available topics.")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Terminal size for the runtime config
	width, height := 80, 24 // Defaults
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

	// Field dimensions are resolved from the screen on Reset
	params := gameCfg.EngineParams(preset, 0, 0)
	g := game.New(topic.Words, params, nil)

	// Open round storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg, topic.ID, currentUser())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
