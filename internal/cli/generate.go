package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/racuca/AIHistoryLine/internal/config"
	"github.com/racuca/AIHistoryLine/internal/timeline"
)

var generateJSON bool

var generateCmd = &cobra.Command{
	Use:   "generate [topic]",
	Short: "Generate a timeline for a topic and print it",
	Long: `Generate a chronological timeline of historical events for a topic.

Examples:
  aihistoryline generate "Korean history"
  aihistoryline generate --json "Roman Empire"`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "print the sorted timeline as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic := strings.TrimSpace(args[0])
	if topic == "" {
		return fmt.Errorf("topic must not be empty")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client := newGenAIClient(cfg)

	events, err := client.Generate(context.Background(), topic)
	if err != nil {
		if verbose {
			fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		}
		return fmt.Errorf("failed to generate the timeline, please try again")
	}

	sorted := timeline.Sort(events)

	if generateJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sorted)
	}

	printTimeline(sorted)
	return nil
}

func printTimeline(events []timeline.Event) {
	if len(events) == 0 {
		fmt.Println("No events found.")
		return
	}

	for _, e := range events {
		fmt.Printf("%s  %s\n", e.Year, e.Title)
		fmt.Printf("    %s\n", e.Description)
		if e.Link != "" {
			fmt.Printf("    %s\n", e.Link)
		}
	}
	fmt.Printf("\n%d events\n", len(events))
}
