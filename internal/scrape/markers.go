package scrape

import (
	"strings"

	"github.com/jonathan/jobfeed/internal/classify"
)

// Inline markers the curated lists attach to a role cell.
const (
	markerNoSponsorship  = "\U0001F6C2"           // 🛂
	markerCitizenship    = "\U0001F1FA\U0001F1F8" // 🇺🇸
	markerClosed         = "\U0001F512"           // 🔒
	markerElite          = "\U0001F525"           // 🔥
	markerAdvancedDegree = "\U0001F393"           // 🎓
)

var allMarkers = []string{
	markerNoSponsorship,
	markerCitizenship,
	markerClosed,
	markerElite,
	markerAdvancedDegree,
}

// StripMarkers removes the inline markers from a cell and reports which
// were present. The returned text is what the record keeps as display text.
func StripMarkers(text string) (string, classify.Flags) {
	flags := classify.Flags{
		NoSponsorship:  strings.Contains(text, markerNoSponsorship),
		Citizenship:    strings.Contains(text, markerCitizenship),
		Closed:         strings.Contains(text, markerClosed),
		Elite:          strings.Contains(text, markerElite),
		AdvancedDegree: strings.Contains(text, markerAdvancedDegree),
	}

	for _, marker := range allMarkers {
		text = strings.ReplaceAll(text, marker, "")
	}
	return strings.TrimSpace(text), flags
}
