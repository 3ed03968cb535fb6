package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobfeed/internal/jobs"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobfeed")
	t.Setenv("CSV_DIR", "")
	t.Setenv("FETCH_TIMEOUT", "")
	t.Setenv("PARALLEL", "")

	cfg, err := FromEnv(Override{})
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/jobfeed", cfg.DatabaseURL)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.False(t, cfg.Parallel)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobfeed")
	t.Setenv("CSV_DIR", "/tmp/exports")
	t.Setenv("FETCH_TIMEOUT", "10s")
	t.Setenv("PARALLEL", "true")

	cfg, err := FromEnv(Override{})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/exports", cfg.CSVDir)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.Parallel)
}

func TestFromEnv_FlagOverridesWin(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CSV_DIR", "/tmp/env-exports")
	t.Setenv("FETCH_TIMEOUT", "")
	t.Setenv("PARALLEL", "")

	// The flag satisfies the required setting without touching the
	// environment.
	cfg, err := FromEnv(Override{
		DatabaseURL:  "postgres://localhost/flagged",
		CSVDir:       "/tmp/flag-exports",
		FetchTimeout: 5 * time.Second,
		Parallel:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/flagged", cfg.DatabaseURL)
	assert.Equal(t, "/tmp/flag-exports", cfg.CSVDir)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.Parallel)
	assert.Empty(t, os.Getenv("DATABASE_URL"))
}

func TestFromEnv_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("FETCH_TIMEOUT", "")

	_, err := FromEnv(Override{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DatabaseURL")
}

func TestFromEnv_BadTimeout(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobfeed")
	t.Setenv("FETCH_TIMEOUT", "not-a-duration")

	_, err := FromEnv(Override{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH_TIMEOUT")
}

func writeSourcesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSources_Valid(t *testing.T) {
	path := writeSourcesFile(t, `[
		{
			"id": "zapply",
			"name": "Zapply New-Grad-Jobs",
			"document_url": "https://example.com/README.md",
			"root_url": "https://example.com",
			"table": "zapply_jobs"
		}
	]`)

	sources, err := LoadSources(path)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, jobs.SourceZapply, sources[0].ID)
	assert.Equal(t, "zapply_jobs", sources[0].Table)
}

func TestLoadSources_UnknownID(t *testing.T) {
	path := writeSourcesFile(t, `[
		{
			"id": "linkedin",
			"name": "LinkedIn",
			"document_url": "https://example.com/doc",
			"root_url": "https://example.com",
			"table": "linkedin_jobs"
		}
	]`)

	_, err := LoadSources(path)
	require.Error(t, err)

	var srcErr *SourcesError
	require.ErrorAs(t, err, &srcErr)
	assert.NotEmpty(t, srcErr.Errors)
}

func TestLoadSources_BadTableName(t *testing.T) {
	path := writeSourcesFile(t, `[
		{
			"id": "zapply",
			"name": "Zapply",
			"document_url": "https://example.com/doc",
			"root_url": "https://example.com",
			"table": "zapply_jobs; DROP TABLE students"
		}
	]`)

	_, err := LoadSources(path)
	require.Error(t, err)

	var srcErr *SourcesError
	assert.ErrorAs(t, err, &srcErr)
}

func TestLoadSources_EmptyArray(t *testing.T) {
	path := writeSourcesFile(t, `[]`)

	_, err := LoadSources(path)
	require.Error(t, err)
}

func TestLoadSources_MissingFile(t *testing.T) {
	_, err := LoadSources(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read sources file")
}
