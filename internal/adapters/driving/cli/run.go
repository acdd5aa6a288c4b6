package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adnahmed/gaze-stars/internal/connectors/github"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: fetch, then generate",
	Long: `Fetches your starred repositories into the record store, scrapes
your star lists, and renders the categorized README in one pass.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	fetcher := starFetcher
	if fetcher == nil {
		var err error
		fetcher, err = buildFetcher(ctx)
		if err != nil {
			return err
		}
	}

	fetchStats, err := fetcher.Fetch(ctx)
	if err != nil {
		if github.IsUnauthorized(err) {
			return fmt.Errorf("authentication failed, check GITHUB_TOKEN: %w", err)
		}
		return fmt.Errorf("fetch failed: %w", err)
	}
	cmd.Printf("Fetched %d starred repositories (%d pages).\n", fetchStats.Repos, fetchStats.Pages)

	generator := readmeGenerator
	if generator == nil {
		gen, err := buildGenerator()
		if err != nil {
			return err
		}
		generator = gen
	}

	genStats, err := generator.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}
	cmd.Printf("Wrote %s: %d lists, %d categorized, %d uncategorized.\n",
		genStats.Output, genStats.Lists, genStats.Categorized, genStats.Uncategorized)
	return nil
}
