package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/letterfall/letterfall/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [topic]",
	Short: "Show round history and stats",
	Long: `Without arguments, shows per-topic statistics over all recorded
rounds. With a topic, shows that topic's ten most recent rounds and its
high score.

Examples:
  letterfall scores
  letterfall scores animals`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printStats(store)
		return
	}
	printTopicRounds(store, args[0])
}

// printStats shows the per-topic aggregate table.
func printStats(store *storage.Store) {
	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'letterfall menu' to record your first round!")
		return
	}

	fmt.Println("Round stats by topic")
	fmt.Println()
	fmt.Printf("  %-12s  %-7s  %-5s  %s\n", "Topic", "Played", "Won", "Best")
	fmt.Printf("  %-12s  %-7s  %-5s  %s\n", "-----", "------", "---", "----")

	for _, st := range stats {
		fmt.Printf("  %-12s  %-7d  %-5d  %d\n", st.TopicID, st.Played, st.Won, st.BestScore)
	}
}

// printTopicRounds shows the recent rounds of one topic.
func printTopicRounds(store *storage.Store, topicID string) {
	rounds, err := store.RecentRounds(topicID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent rounds - %s\n", topicID)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'letterfall play %s' to record the first one!\n", topicID)
		return
	}

	fmt.Printf("  %-16s  %-10s  %-10s  %-6s  %s\n", "Date", "Player", "Outcome", "Words", "Score")
	fmt.Printf("  %-16s  %-10s  %-10s  %-6s  %s\n", "----", "------", "-------", "-----", "-----")

	for _, r := range rounds {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-10s  %-10s  %d/5    %d\n", dateStr, r.Player, r.Outcome, r.WordsFound, r.Score)
	}

	fmt.Println()
	if high, err := store.HighScore(topicID); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
