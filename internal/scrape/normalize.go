package scrape

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobfeed/internal/jobs"
)

// markdownLinkRe matches [text](url) and captures the URL.
var markdownLinkRe = regexp.MustCompile(`\[.*?\]\((https?://[^)\s]+)\)`)

// ExtractLink pulls the target of the first Markdown link in a cell.
func ExtractLink(cell string) (string, bool) {
	m := markdownLinkRe.FindStringSubmatch(cell)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// JobTypeFor derives the employment type from a role title.
func JobTypeFor(role string) string {
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "intern"), strings.Contains(r, "co-op"), strings.Contains(r, "coop"):
		return jobs.JobTypeInternship
	case strings.Contains(r, "contract"):
		return jobs.JobTypeContract
	default:
		return jobs.JobTypeFullTime
	}
}

// tooShort reports whether a required cell is missing or degenerate. Company
// and role names need at least two characters to be usable.
func tooShort(cell string) bool {
	return len(strings.TrimSpace(cell)) < 2
}
