// Package main provides the entry point for the jobfeed collection CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobfeed",
	Short: "Job posting collection pipeline",
	Long:  "Jobfeed collects curated new-grad job postings from public GitHub listing repositories, normalizes them, and replaces the per-source database snapshots.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
