package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobfeed/internal/jobs"
)

func exportTestBatch() []jobs.Posting {
	posted := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)
	age := 3.0
	return []jobs.Posting{
		{
			ID:                  uuid.New(),
			Company:             "Acme",
			Title:               "Software Engineer",
			Location:            "New York, NY",
			URL:                 "https://example.com/jobs/1",
			Source:              jobs.SourceSimplify,
			JobType:             jobs.JobTypeFullTime,
			PostedAgo:           "3d",
			PostedAt:            &posted,
			AgeDays:             &age,
			FreshnessScore:      90,
			RequiresSponsorship: true,
			CollectedAt:         time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:             uuid.New(),
			Company:        "Initech, Inc.",
			Title:          `Engineer, "Platform"`,
			URL:            "https://example.com/jobs/2",
			Source:         jobs.SourceSimplify,
			JobType:        jobs.JobTypeFullTime,
			FreshnessScore: 50,
			CollectedAt:    time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteCSV_RoundTripsThroughReader(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteCSV(&b, exportTestBatch()))

	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3) // header + 2 rows

	assert.Equal(t, csvHeader, records[0])

	first := records[1]
	assert.Equal(t, "Acme", first[1])
	assert.Equal(t, "Software Engineer", first[2])
	assert.Equal(t, "3", first[9])  // age_days
	assert.Equal(t, "90", first[10]) // freshness_score
	assert.Equal(t, "true", first[13])

	// Commas and quotes in fields survive quoting.
	second := records[2]
	assert.Equal(t, "Initech, Inc.", second[1])
	assert.Equal(t, `Engineer, "Platform"`, second[2])
	assert.Equal(t, "", second[9]) // unknown age stays empty
}

func TestWriteCSVFile_NamesFileAfterTable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	src := jobs.Source{ID: jobs.SourceSimplify, Table: "github_jobs"}

	path, err := WriteCSVFile(dir, src, exportTestBatch())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "github_jobs.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme")
}
