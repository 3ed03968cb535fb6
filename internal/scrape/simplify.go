package scrape

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/jonathan/jobfeed/internal/classify"
	"github.com/jonathan/jobfeed/internal/freshness"
	"github.com/jonathan/jobfeed/internal/jobs"
)

// simplifyMinCells: company, role, location, apply link, age.
const simplifyMinCells = 5

// simplifyParser reads the SimplifyJobs README, whose listing table is
// embedded as literal HTML rather than pipe syntax. The first table in the
// document is the main new-grad software engineering table.
type simplifyParser struct {
	src  jobs.Source
	opts Options
}

func (p *simplifyParser) Parse(doc string, now time.Time) ([]jobs.Posting, error) {
	root, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return nil, &Error{Source: p.src.ID, Message: "failed to parse document HTML", Cause: err}
	}

	table := root.Find("table").First()
	if table.Length() == 0 {
		return nil, &Error{Source: p.src.ID, Message: "no listing table found in document"}
	}

	var postings []jobs.Posting
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			// Header row.
			return
		}
		cells := row.Find("td")
		if cells.Length() < simplifyMinCells {
			return
		}

		company := strings.TrimSpace(cells.Eq(0).Text())
		role := strings.TrimSpace(cells.Eq(1).Text())
		location := strings.TrimSpace(cells.Eq(2).Text())
		age := strings.TrimSpace(cells.Eq(4).Text())

		if tooShort(company) || tooShort(role) {
			return
		}

		url := p.src.RootURL
		if href, ok := cells.Eq(3).Find("a").First().Attr("href"); ok && href != "" {
			url = href
		}

		title, flags := StripMarkers(role)
		tags := p.opts.Classify.Classify(company, flags)
		postedAt, ageDays := freshness.ParseRelativeTime(age, now)

		postings = append(postings, jobs.Posting{
			ID:                     uuid.New(),
			Company:                company,
			Title:                  title,
			Location:               location,
			URL:                    url,
			Source:                 p.src.ID,
			JobType:                JobTypeFor(title),
			PostedAgo:              age,
			PostedAt:               postedAt,
			AgeDays:                ageDays,
			FreshnessScore:         p.opts.Freshness.Score(ageDays),
			IsFAANG:                tags.IsFAANG,
			IsTier1:                tags.IsTier1,
			RequiresSponsorship:    tags.RequiresSponsorship,
			RequiresCitizenship:    tags.RequiresCitizenship,
			IsClosed:               tags.IsClosed,
			RequiresAdvancedDegree: tags.RequiresAdvancedDegree,
			Description:            simplifyDescription(company, tags),
			CollectedAt:            now,
		})
	})

	return postings, nil
}

func simplifyDescription(company string, tags classify.Tags) string {
	var b strings.Builder
	b.WriteString("New graduate position at " + company + ". ")
	if tags.IsFAANG {
		b.WriteString("FAANG company. ")
	}
	if tags.RequiresCitizenship {
		b.WriteString("US Citizenship required. ")
	}
	if tags.RequiresSponsorship {
		b.WriteString("Visa sponsorship may be available. ")
	} else {
		b.WriteString("Visa sponsorship NOT available. ")
	}
	if tags.RequiresAdvancedDegree {
		b.WriteString("Advanced degree (Master's/PhD) required. ")
	}
	return strings.TrimSpace(b.String())
}
