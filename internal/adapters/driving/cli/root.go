// Package cli wires the cobra commands that drive the pipeline:
// fetch, lists, generate, run and version.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/adnahmed/gaze-stars/internal/adapters/driven/storage/jsonl"
	"github.com/adnahmed/gaze-stars/internal/config"
	"github.com/adnahmed/gaze-stars/internal/connectors/github"
	"github.com/adnahmed/gaze-stars/internal/core/ports/driving"
	"github.com/adnahmed/gaze-stars/internal/core/services"
	"github.com/adnahmed/gaze-stars/internal/logger"
	"github.com/adnahmed/gaze-stars/internal/scraper"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var verbose bool

// Injected services. Production commands build these from configuration
// when nil; tests replace them with mocks.
var (
	starFetcher     driving.Fetcher
	readmeGenerator driving.Generator
	listInspector   driving.ListInspector
)

var rootCmd = &cobra.Command{
	Use:   "gaze-stars",
	Short: "Generate a categorized README of your starred GitHub repositories",
	Long: `gaze-stars fetches the repositories you have starred, scrapes your
star lists, and renders a categorized Markdown README from a template.

Configuration is environment-style (GITHUB_USERNAME, GITHUB_TOKEN,
TEMPLATE_PATH, OUTPUT_PATH, SORT_BY, DATA_FILE), with optional .env and
~/.config/gaze-stars/config.toml layers.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// buildFetcher constructs the production fetch pipeline from configuration.
func buildFetcher(ctx context.Context) (driving.Fetcher, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireUsername(); err != nil {
		return nil, err
	}
	if err := cfg.RequireToken(); err != nil {
		return nil, err
	}

	client := github.NewClient(ctx, cfg.Token)
	store := jsonl.NewStarStore(cfg.DataFile)
	return services.NewFetchService(client, store, cfg.Username), nil
}

// buildGenerator constructs the production render pipeline from
// configuration. Scraping needs no credential, only the username.
func buildGenerator() (*services.GenerateService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireUsername(); err != nil {
		return nil, err
	}

	src := scraper.New(scraper.NewRegexParser())
	store := jsonl.NewStarStore(cfg.DataFile)
	return services.NewGenerateService(
		src, store, cfg.Username, cfg.TemplatePath, cfg.OutputPath, cfg.SortBy,
	), nil
}
