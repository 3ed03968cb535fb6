// Package classify derives employer-tier and restriction tags from a company
// name and the raw markers embedded in a listing row.
package classify

import "strings"

// Flags are the raw markers a parser detected inside a row's cells, before
// any company-name rules apply.
type Flags struct {
	NoSponsorship  bool // 🛂: employer will not sponsor a visa
	Citizenship    bool // 🇺🇸: US citizenship required
	Closed         bool // 🔒: application closed
	Elite          bool // 🔥: source marks the employer as top-tier
	AdvancedDegree bool // 🎓: Master's/PhD required
}

// Tags is the derived classification for one posting.
type Tags struct {
	IsFAANG                bool
	IsTier1                bool
	RequiresSponsorship    bool
	RequiresCitizenship    bool
	IsClosed               bool
	RequiresAdvancedDegree bool
}

// Config holds the company-name rule sets. All matching is case-insensitive
// substring containment; Excluded takes precedence over both inclusion sets.
type Config struct {
	FAANG    []string
	Tier1    []string
	Excluded []string
}

// DefaultConfig returns the fixed rule sets.
//
// The exclusion list exists precisely because substring matching is
// imprecise: banks and consulting firms must never be tagged FAANG/Tier-1
// even when their names happen to contain an inclusion-set entry.
func DefaultConfig() Config {
	return Config{
		FAANG: []string{
			"google", "amazon", "apple", "meta", "facebook", "microsoft", "netflix",
		},
		Tier1: []string{
			"tesla", "nvidia", "spacex", "stripe", "coinbase",
			"uber", "lyft", "airbnb", "databricks", "openai",
			"anthropic", "snap", "reddit", "dropbox", "twitch", "x", "twitter",
		},
		Excluded: []string{
			"bmo", "cibc", "rbc", "scotiabank", "td bank",
			"autodesk", "canada life",
			"deloitte", "ey", "pwc", "kpmg", "accenture",
		},
	}
}

// Classify derives tags for a company and its raw row markers. Absent markers
// mean the defaults: sponsorship available, no citizenship requirement, open,
// no advanced-degree requirement.
func (c Config) Classify(company string, flags Flags) Tags {
	tags := Tags{
		RequiresSponsorship:    !flags.NoSponsorship,
		RequiresCitizenship:    flags.Citizenship,
		IsClosed:               flags.Closed,
		RequiresAdvancedDegree: flags.AdvancedDegree,
	}

	name := strings.ToLower(company)

	if c.isExcluded(name) {
		return tags
	}

	tags.IsFAANG = flags.Elite || containsAny(name, c.FAANG)
	tags.IsTier1 = containsAny(name, c.Tier1)
	return tags
}

func (c Config) isExcluded(lowerName string) bool {
	return containsAny(lowerName, c.Excluded)
}

func containsAny(lowerName string, entries []string) bool {
	for _, e := range entries {
		if e == "" {
			continue
		}
		if strings.Contains(lowerName, e) {
			return true
		}
	}
	return false
}
