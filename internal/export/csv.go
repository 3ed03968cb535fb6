// Package export writes the companion flat-file copy of each snapshot batch,
// for inspection alongside the database write.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jonathan/jobfeed/internal/jobs"
)

// csvHeader mirrors the snapshot table columns.
var csvHeader = []string{
	"id", "company", "title", "location", "url", "source", "job_type",
	"posted_ago", "posted_at", "age_days", "freshness_score",
	"is_faang", "is_tier1", "requires_sponsorship", "requires_citizenship",
	"is_closed", "requires_advanced_degree", "is_archived",
	"level", "category", "description", "collected_at",
}

// WriteCSV writes one batch as CSV to w, header first.
func WriteCSV(w io.Writer, batch []jobs.Posting) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range batch {
		record := []string{
			p.ID.String(),
			p.Company,
			p.Title,
			p.Location,
			p.URL,
			string(p.Source),
			p.JobType,
			p.PostedAgo,
			formatTimePtr(p.PostedAt),
			formatFloatPtr(p.AgeDays),
			strconv.Itoa(p.FreshnessScore),
			strconv.FormatBool(p.IsFAANG),
			strconv.FormatBool(p.IsTier1),
			strconv.FormatBool(p.RequiresSponsorship),
			strconv.FormatBool(p.RequiresCitizenship),
			strconv.FormatBool(p.IsClosed),
			strconv.FormatBool(p.RequiresAdvancedDegree),
			strconv.FormatBool(p.IsArchived),
			p.Level,
			p.Category,
			p.Description,
			p.CollectedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record for %s: %w", p.URL, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteCSVFile writes one batch to <dir>/<table>.csv, creating dir as needed.
// The file is named after the snapshot table so the pair stays associated.
func WriteCSVFile(dir string, src jobs.Source, batch []jobs.Posting) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, src.Table+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := WriteCSV(f, batch); err != nil {
		return "", err
	}
	return path, nil
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatFloatPtr(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
