package scrape

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobfeed/internal/freshness"
	"github.com/jonathan/jobfeed/internal/jobs"
)

// swe2026MinCells: company, role, location, posted. The apply link is a
// fifth cell when present.
const swe2026MinCells = 4

// swe2026Parser reads the Zapply SWE 2026 README: one flat pipe table with
// the company in the first cell, split into an active section and an
// archived section further down the document.
type swe2026Parser struct {
	src  jobs.Source
	opts Options
}

// isArchiveHeading reports whether a line opens the archived-jobs section.
func isArchiveHeading(line string) bool {
	l := strings.ToLower(line)
	return strings.Contains(l, "archived") && strings.Contains(l, "jobs")
}

func (p *swe2026Parser) Parse(doc string, now time.Time) ([]jobs.Posting, error) {
	scanner := &Scanner{Archive: isArchiveHeading, MinCells: swe2026MinCells}

	var postings []jobs.Posting
	for _, row := range scanner.Scan(doc) {
		company := row.Cells[0]
		role := row.Cells[1]
		location := row.Cells[2]
		posted := row.Cells[3]

		if tooShort(company) || tooShort(role) {
			continue
		}

		url := p.src.RootURL
		if len(row.Cells) > 4 {
			if link, ok := ExtractLink(row.Cells[4]); ok {
				url = link
			}
		}

		title, flags := StripMarkers(role)
		tags := p.opts.Classify.Classify(company, flags)
		postedAt, ageDays := freshness.ParseRelativeTime(posted, now)

		postings = append(postings, jobs.Posting{
			ID:                     uuid.New(),
			Company:                company,
			Title:                  title,
			Location:               location,
			URL:                    url,
			Source:                 p.src.ID,
			JobType:                JobTypeFor(title),
			PostedAgo:              posted,
			PostedAt:               postedAt,
			AgeDays:                ageDays,
			FreshnessScore:         p.opts.Freshness.Score(ageDays),
			IsFAANG:                tags.IsFAANG,
			IsTier1:                tags.IsTier1,
			RequiresSponsorship:    tags.RequiresSponsorship,
			RequiresCitizenship:    tags.RequiresCitizenship,
			IsClosed:               tags.IsClosed,
			RequiresAdvancedDegree: tags.RequiresAdvancedDegree,
			IsArchived:             row.Archived,
			CollectedAt:            now,
		})
	}

	return postings, nil
}
