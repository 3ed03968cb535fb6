package scrape

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobfeed/internal/classify"
	"github.com/jonathan/jobfeed/internal/freshness"
	"github.com/jonathan/jobfeed/internal/jobs"
)

// zapplyHeadingRe matches the per-company section headings, e.g.
// "#### 🔥 **Google** (228 jobs)". The leading emoji varies by company.
var zapplyHeadingRe = regexp.MustCompile(`^####\s+.*?\*\*([A-Za-z0-9\s&.]+)\*\*`)

// zapplyMinCells: role, location, posted, level. Category and apply link
// are present on well-formed rows but tolerated when missing.
const zapplyMinCells = 4

// defaultCategory applies when a row omits its category cell.
const defaultCategory = "Software Engineering"

// zapplyParser reads the Zapply New-Grad-Jobs README: one pipe table per
// company, each introduced by a bold heading that carries the company name.
type zapplyParser struct {
	src  jobs.Source
	opts Options
}

func (p *zapplyParser) Parse(doc string, now time.Time) ([]jobs.Posting, error) {
	scanner := &Scanner{Heading: zapplyHeadingRe, MinCells: zapplyMinCells}

	var postings []jobs.Posting
	for _, row := range scanner.Scan(doc) {
		company := row.Company
		if company == "" {
			company = "Unknown"
		}

		role := row.Cells[0]
		location := row.Cells[1]
		posted := row.Cells[2]
		level := row.Cells[3]
		category := defaultCategory
		if len(row.Cells) > 4 {
			category = row.Cells[4]
		}
		applyCell := row.Cells[len(row.Cells)-1]
		if len(row.Cells) > 5 {
			applyCell = row.Cells[5]
		}

		if tooShort(role) {
			continue
		}

		url := p.src.RootURL
		if link, ok := ExtractLink(applyCell); ok {
			url = link
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
			Level:                  level,
			Category:               category,
			Description:            zapplyDescription(level, company, category, posted, tags),
			CollectedAt:            now,
		})
	}

	return postings, nil
}

func zapplyDescription(level, company, category, posted string, tags classify.Tags) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s position at %s in %s. Posted %s. ", level, company, category, posted)
	if tags.IsFAANG {
		b.WriteString("FAANG company. ")
	} else if tags.IsTier1 {
		b.WriteString("Top-tier tech company. ")
	}
	return strings.TrimSpace(b.String())
}
