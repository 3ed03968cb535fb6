// Package jobs defines the canonical job posting record and the source
// registry shared by every stage of the collection pipeline.
package jobs

import (
	"time"

	"github.com/google/uuid"
)

// SourceID identifies one configured listing source.
type SourceID string

// Known sources. Each owns a disjoint snapshot table.
const (
	SourceSimplify      SourceID = "simplify"
	SourceZapply        SourceID = "zapply"
	SourceZapplySWE2026 SourceID = "zapply_swe_2026"
)

// JobType constants derived from the role title.
const (
	JobTypeFullTime   = "fulltime"
	JobTypeInternship = "internship"
	JobTypeContract   = "contract"
)

// Posting is the canonical record produced for one listing. Fields that
// cannot be derived from the source text stay nil rather than guessed.
type Posting struct {
	ID       uuid.UUID `json:"id"`
	Company  string    `json:"company"`
	Title    string    `json:"title"`
	Location string    `json:"location"`

	// URL is the deduplication key. Never empty: when no apply link is
	// extractable it falls back to the source's root page.
	URL    string   `json:"url"`
	Source SourceID `json:"source"`

	JobType string `json:"job_type"`

	// Freshness. PostedAgo keeps the raw phrase ("3h ago"); PostedAt and
	// AgeDays are nil when the phrase is unrecognized.
	PostedAgo      string     `json:"posted_ago,omitempty"`
	PostedAt       *time.Time `json:"posted_at,omitempty"`
	AgeDays        *float64   `json:"age_days,omitempty"`
	FreshnessScore int        `json:"freshness_score"`

	// Classification tags.
	IsFAANG                bool `json:"is_faang"`
	IsTier1                bool `json:"is_tier1"`
	RequiresSponsorship    bool `json:"requires_sponsorship"`
	RequiresCitizenship    bool `json:"requires_citizenship"`
	IsClosed               bool `json:"is_closed"`
	RequiresAdvancedDegree bool `json:"requires_advanced_degree"`
	IsArchived             bool `json:"is_archived"`

	Level       string `json:"level,omitempty"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`

	CollectedAt time.Time `json:"collected_at"`
}

// IsFresh reports whether the posting is less than a week old.
func (p *Posting) IsFresh() bool {
	return p.AgeDays != nil && *p.AgeDays < 7
}

// Source describes where one listing document lives and which table its
// snapshot replaces.
type Source struct {
	ID   SourceID `json:"id"`
	Name string   `json:"name"`

	// DocumentURL is the raw listing document fetched each run.
	DocumentURL string `json:"document_url"`

	// RootURL is the canonical-URL fallback for rows without an apply link.
	RootURL string `json:"root_url"`

	// Table is the snapshot table this source owns.
	Table string `json:"table"`
}

// DefaultSources returns the built-in source registry.
func DefaultSources() []Source {
	return []Source{
		{
			ID:          SourceSimplify,
			Name:        "SimplifyJobs New-Grad-Positions",
			DocumentURL: "https://raw.githubusercontent.com/SimplifyJobs/New-Grad-Positions/dev/README.md",
			RootURL:     "https://github.com/SimplifyJobs/New-Grad-Positions",
			Table:       "github_jobs",
		},
		{
			ID:          SourceZapply,
			Name:        "Zapply New-Grad-Jobs",
			DocumentURL: "https://raw.githubusercontent.com/zapplyjobs/New-Grad-Jobs/main/README.md",
			RootURL:     "https://github.com/zapplyjobs/New-Grad-Jobs",
			Table:       "zapply_jobs",
		},
		{
			ID:          SourceZapplySWE2026,
			Name:        "Zapply SWE 2026",
			DocumentURL: "https://raw.githubusercontent.com/zapplyjobs/New-Grad-Software-Engineering-Jobs-2026/main/README.md",
			RootURL:     "https://github.com/zapplyjobs/New-Grad-Software-Engineering-Jobs-2026",
			Table:       "zapply_swe_2026_jobs",
		},
	}
}

// DeduplicateByURL removes postings whose canonical URL was already seen,
// keeping the first occurrence. Used when batches from multiple passes over
// the same logical search are combined.
func DeduplicateByURL(postings []Posting) []Posting {
	seen := make(map[string]struct{}, len(postings))
	out := make([]Posting, 0, len(postings))
	for _, p := range postings {
		if _, ok := seen[p.URL]; ok {
			continue
		}
		seen[p.URL] = struct{}{}
		out = append(out, p)
	}
	return out
}
