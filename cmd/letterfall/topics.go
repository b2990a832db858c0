package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/letterfall/letterfall/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List all available topics",
	Long: `Shows every topic letterfall knows about, including custom topics
from ~/.letterfall/topics/ or a --topics file.`,
	Run: runTopics,
}

func init() {
	topicsCmd.Flags().StringVar(&flagTopics, "topics", "", "Path to custom topics YAML")
}

func runTopics(cmd *cobra.Command, args []string) {
	catalog, err := topics.Load(flagTopics)
	if err != nil {
		fmt.Printf("Error loading topics: %v\n", err)
		return
	}

	all := catalog.All()
	if len(all) == 0 {
		fmt.Println("No topics available.")
		return
	}

	fmt.Println("Available topics:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, t := range all {
		if len(t.ID) > maxIDLen {
			maxIDLen = len(t.ID)
		}
	}

	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Name", "Words")
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "--", "----", "-----")

	for _, t := range all {
		fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, t.ID, t.Name, strings.Join(t.Words, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'letterfall play <id>' to play a topic.")
}
