package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobfeed/internal/jobs"
)

func TestSearchRequest_Validate(t *testing.T) {
	valid := &SearchRequest{Keywords: "software engineer", JobType: "fulltime", Freshness: 75}
	assert.NoError(t, valid.Validate())

	missing := &SearchRequest{Location: "NYC"}
	assert.Error(t, missing.Validate())

	badType := &SearchRequest{Keywords: "swe", JobType: "gig"}
	assert.Error(t, badType.Validate())

	badFreshness := &SearchRequest{Keywords: "swe", Freshness: 200}
	assert.Error(t, badFreshness.Validate())
}

func TestTailorRequest_Validate(t *testing.T) {
	valid := &TailorRequest{
		JobTitle:       "Software Engineer",
		Company:        "Acme",
		JobDescription: "Build things.",
		BaseResume:     "...",
	}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&TailorRequest{JobTitle: "SWE"}).Validate())
}

func TestNewJobView(t *testing.T) {
	age := 3.0
	p := jobs.Posting{
		Company:        "Acme",
		Title:          "Software Engineer",
		Location:       "Remote",
		URL:            "https://example.com/jobs/1",
		Source:         jobs.SourceZapply,
		JobType:        jobs.JobTypeFullTime,
		PostedAgo:      "3d ago",
		AgeDays:        &age,
		FreshnessScore: 90,
		IsFAANG:        true,
		Level:          "Entry-Level",
	}

	view := NewJobView(p)
	assert.Equal(t, "Acme", view.Company)
	assert.Equal(t, "zapply", view.Source)
	require.NotNil(t, view.DaysAgo)
	assert.Equal(t, 3.0, *view.DaysAgo)
	assert.Equal(t, 90, view.FreshnessScore)
	assert.True(t, view.IsFAANG)

	// Unknown age stays absent rather than zero.
	view = NewJobView(jobs.Posting{})
	assert.Nil(t, view.DaysAgo)
}
