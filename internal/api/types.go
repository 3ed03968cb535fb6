// Package api defines the wire contracts downstream services use to consume
// the collected postings: the search surface over the snapshot tables and
// the resume-tailoring request shape. The services themselves live outside
// this repository; only the shapes are shared.
package api

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/jobfeed/internal/jobs"
)

// SearchRequest queries the persisted snapshots.
type SearchRequest struct {
	Keywords string `json:"keywords" validate:"required,min=1"`
	Location string `json:"location"`
	JobType  string `json:"job_type" validate:"omitempty,oneof=fulltime internship contract"`

	// Freshness is the minimum freshness score a posting must have.
	Freshness int `json:"freshness" validate:"min=0,max=100"`
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// JobView is the posting shape the presentation layer renders, including the
// optional metadata it turns into badges.
type JobView struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Source      string `json:"source"`

	JobType        string   `json:"job_type,omitempty"`
	PostedAgo      string   `json:"posted_ago,omitempty"`
	DaysAgo        *float64 `json:"days_ago,omitempty"`
	FreshnessScore int      `json:"freshness_score"`
	IsFAANG        bool     `json:"is_faang"`
	IsTier1        bool     `json:"is_tier1"`
	IsClosed       bool     `json:"is_closed"`
	Level          string   `json:"level,omitempty"`
	Category       string   `json:"category,omitempty"`
}

// NewJobView projects a collected posting into its presentation shape.
func NewJobView(p jobs.Posting) JobView {
	return JobView{
		Title:          p.Title,
		Company:        p.Company,
		Location:       p.Location,
		URL:            p.URL,
		Description:    p.Description,
		Source:         string(p.Source),
		JobType:        p.JobType,
		PostedAgo:      p.PostedAgo,
		DaysAgo:        p.AgeDays,
		FreshnessScore: p.FreshnessScore,
		IsFAANG:        p.IsFAANG,
		IsTier1:        p.IsTier1,
		IsClosed:       p.IsClosed,
		Level:          p.Level,
		Category:       p.Category,
	}
}

// SearchResponse is the search surface's reply.
type SearchResponse struct {
	Jobs            []JobView `json:"jobs"`
	TotalInDatabase int       `json:"total_in_database"`
	LastUpdated     time.Time `json:"last_updated"`
	DataSource      string    `json:"data_source"`
}

// TailorRequest asks the generator for tailored application artifacts. The
// generator never reads or writes the snapshot tables directly.
type TailorRequest struct {
	JobTitle       string `json:"job_title" validate:"required"`
	Company        string `json:"company" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
	BaseResume     string `json:"base_resume" validate:"required"`
}

// Validate validates the TailorRequest using the validator.
func (r *TailorRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// TailorResponse carries the generated artifacts.
type TailorResponse struct {
	Resume      string `json:"resume"`
	CoverLetter string `json:"cover_letter,omitempty"`
}
