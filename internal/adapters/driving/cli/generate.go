package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the categorized README from the record store",
	Long: `Scrapes your star lists, loads the record store, and renders the
categorized README into OUTPUT_PATH using the template at TEMPLATE_PATH.
Run "fetch" first (or "run" for the full pipeline).`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	generator := readmeGenerator
	if generator == nil {
		gen, err := buildGenerator()
		if err != nil {
			return err
		}
		generator = gen
	}

	stats, err := generator.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate failed: %w", err)
	}

	cmd.Printf("Wrote %s: %d lists, %d categorized, %d uncategorized.\n",
		stats.Output, stats.Lists, stats.Categorized, stats.Uncategorized)
	return nil
}
