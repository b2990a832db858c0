package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/letterfall/letterfall/internal/config"
	"github.com/letterfall/letterfall/internal/core"
	"github.com/letterfall/letterfall/internal/game"
	"github.com/letterfall/letterfall/internal/platform/tui"
	"github.com/letterfall/letterfall/internal/storage"
	"github.com/letterfall/letterfall/internal/topics"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a topic interactively",
	Long: `Start letterfall in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to start a round.
After a round ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start round
  D            - Cycle difficulty
  Tab          - Round history
  Q            - Quit

Examples:
  letterfall menu
  letterfall menu --fps 30
  letterfall menu --db ./rounds.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagTopics, "topics", "", "Path to custom topics YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Initial difficulty preset: easy, normal, hard")
}

func runMenu(_ *cobra.Command, _ []string) {
	catalog, err := topics.Load(flagTopics)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading topics: %v\n", err)
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		store = nil
	}

	// Terminal size
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

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(catalog, preset, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Carry forward size and difficulty changes
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, catalog, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from the history view
		}

		if menuResult.Topic == nil {
			break
		}

		// Each round gets a fresh seed
		cfg.Seed = time.Now().UnixNano()

		params := gameCfg.EngineParams(preset, 0, 0)
		g := game.New(menuResult.Topic.Words, params, nil)

		if err := tui.Run(g, store, cfg, menuResult.Topic.ID, currentUser()); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
