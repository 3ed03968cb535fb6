package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobfeed/internal/config"
	"github.com/jonathan/jobfeed/internal/db"
	"github.com/jonathan/jobfeed/internal/fetch"
	"github.com/jonathan/jobfeed/internal/jobs"
	"github.com/jonathan/jobfeed/internal/pipeline"
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Run the collection pipeline once for every configured source",
	Long:  "Fetch each source's listing document, parse and normalize its postings, and replace that source's database snapshot. The run succeeds if at least one source succeeds.",
	RunE:  runCollect,
}

var (
	sourceIDs    []string
	sourcesFile  string
	csvDir       string
	databaseURL  string
	fetchTimeout time.Duration
	parallel     bool
)

func init() {
	collectCmd.Flags().StringSliceVarP(&sourceIDs, "source", "s", nil, "Source IDs to run (default: all)")
	collectCmd.Flags().StringVar(&sourcesFile, "sources", "", "Path to a JSON sources file overriding the built-in registry")
	collectCmd.Flags().StringVar(&csvDir, "csv-dir", "", "Directory for companion CSV exports (overrides CSV_DIR)")
	collectCmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection string (overrides DATABASE_URL)")
	collectCmd.Flags().DurationVar(&fetchTimeout, "timeout", 0, "Per-source fetch timeout (overrides FETCH_TIMEOUT)")
	collectCmd.Flags().BoolVar(&parallel, "parallel", false, "Run all sources concurrently")

	rootCmd.AddCommand(collectCmd)
}

// loadRunConfig merges the environment configuration with the CLI flags.
// Flags win.
func loadRunConfig() (*config.Config, error) {
	return config.FromEnv(config.Override{
		DatabaseURL:  databaseURL,
		CSVDir:       csvDir,
		FetchTimeout: fetchTimeout,
		Parallel:     parallel,
	})
}

// resolveSources loads the registry and applies the --source filter.
func resolveSources() ([]jobs.Source, error) {
	sources := jobs.DefaultSources()
	if sourcesFile != "" {
		loaded, err := config.LoadSources(sourcesFile)
		if err != nil {
			return nil, err
		}
		sources = loaded
	}

	if len(sourceIDs) == 0 {
		return sources, nil
	}

	wanted := make(map[jobs.SourceID]bool, len(sourceIDs))
	for _, id := range sourceIDs {
		wanted[jobs.SourceID(id)] = true
	}

	var filtered []jobs.Source
	for _, src := range sources {
		if wanted[src.ID] {
			filtered = append(filtered, src)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("no configured source matches %v", sourceIDs)
	}
	return filtered, nil
}

// runCollection executes one full pipeline run and prints the summary.
func runCollection(ctx context.Context, cfg *config.Config, sources []jobs.Source) (*pipeline.Report, error) {
	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	runner := pipeline.NewRunner(store, pipeline.Options{
		Sources:  sources,
		Fetch:    &fetch.Options{Timeout: cfg.FetchTimeout, UserAgent: fetch.DefaultUserAgent},
		CSVDir:   cfg.CSVDir,
		Parallel: cfg.Parallel,
		Out:      os.Stdout,
	})

	report, err := runner.Run(ctx)
	if err != nil {
		return nil, err
	}
	report.Write(os.Stdout)
	return report, nil
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}
	sources, err := resolveSources()
	if err != nil {
		return err
	}

	report, err := runCollection(cmd.Context(), cfg, sources)
	if err != nil {
		return err
	}

	if !report.AnySucceeded() {
		return fmt.Errorf("all %d sources failed", len(report.Results))
	}
	return nil
}
