package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adnahmed/gaze-stars/internal/connectors/github"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch starred repositories into the record store",
	Long: `Paginates your starred repositories and streams them into the
durable record store (DATA_FILE), one JSON line per repository. The
store is truncated at the start of each fetch.`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	fetcher := starFetcher
	if fetcher == nil {
		var err error
		fetcher, err = buildFetcher(ctx)
		if err != nil {
			return err
		}
	}

	stats, err := fetcher.Fetch(ctx)
	if err != nil {
		if github.IsUnauthorized(err) {
			return fmt.Errorf("authentication failed, check GITHUB_TOKEN: %w", err)
		}
		return fmt.Errorf("fetch failed: %w", err)
	}

	cmd.Printf("Fetched %d starred repositories (%d pages).\n", stats.Repos, stats.Pages)
	return nil
}
