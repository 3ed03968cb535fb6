package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobfeed/internal/jobs"
)

func TestExtractLink(t *testing.T) {
	url, ok := ExtractLink("[Apply](https://example.com/jobs/123)")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/jobs/123", url)

	_, ok = ExtractLink("Apply here")
	assert.False(t, ok)

	_, ok = ExtractLink("[Apply](ftp://example.com)")
	assert.False(t, ok)
}

func TestJobTypeFor(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"Software Engineer", jobs.JobTypeFullTime},
		{"Software Engineering Intern", jobs.JobTypeInternship},
		{"Software Developer Co-op", jobs.JobTypeInternship},
		{"Data Engineer Coop", jobs.JobTypeInternship},
		{"Backend Engineer (Contract)", jobs.JobTypeContract},
		{"", jobs.JobTypeFullTime},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, JobTypeFor(tt.role), "role %q", tt.role)
	}
}

func TestStripMarkers(t *testing.T) {
	title, flags := StripMarkers("Software Engineer 🔒🇺🇸")
	assert.Equal(t, "Software Engineer", title)
	assert.True(t, flags.Closed)
	assert.True(t, flags.Citizenship)
	assert.False(t, flags.NoSponsorship)
	assert.False(t, flags.Elite)
	assert.False(t, flags.AdvancedDegree)

	title, flags = StripMarkers("🔥 ML Engineer 🛂 🎓")
	assert.Equal(t, "ML Engineer", title)
	assert.True(t, flags.Elite)
	assert.True(t, flags.NoSponsorship)
	assert.True(t, flags.AdvancedDegree)

	title, flags = StripMarkers("Plain Role")
	assert.Equal(t, "Plain Role", title)
	assert.Equal(t, false, flags.Closed)
}
