// Package freshness converts the relative-time phrases that listing sources
// publish ("3h ago", "2w ago") into absolute dates and a bounded staleness
// score.
package freshness

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// relativeRe matches "<n><unit>" with an optional "ago" suffix. "mo" must be
// tried before "m" so months don't parse as a bare minute-looking unit.
var relativeRe = regexp.MustCompile(`^(\d+)\s*(mo|h|d|w|m)(?:\s*ago)?$`)

// Bracket maps an exclusive upper age bound (in days) to a score.
type Bracket struct {
	MaxDays float64
	Score   int
}

// Config holds the scoring breakpoints. Injected rather than global so tests
// can substitute their own brackets.
type Config struct {
	// Brackets in ascending MaxDays order. Ages are matched with a strict
	// less-than, so an age exactly on a boundary falls into the next bracket.
	Brackets []Bracket

	// FloorScore applies beyond the last bracket.
	FloorScore int

	// UnknownScore applies when the age could not be determined.
	UnknownScore int
}

// DefaultConfig returns the standard scoring breakpoints.
func DefaultConfig() Config {
	return Config{
		Brackets: []Bracket{
			{MaxDays: 1, Score: 100},
			{MaxDays: 7, Score: 90},
			{MaxDays: 14, Score: 75},
			{MaxDays: 30, Score: 60},
			{MaxDays: 60, Score: 40},
		},
		FloorScore:   20,
		UnknownScore: 50,
	}
}

// ParseRelativeTime parses phrases like "3h ago", "2d", "1w ago", "6mo ago"
// relative to now. Units: h=hours, d=days, w=weeks, mo/m=months (30 days,
// a fixed approximation). Unrecognized text yields (nil, nil).
func ParseRelativeTime(text string, now time.Time) (*time.Time, *float64) {
	m := relativeRe.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if m == nil {
		return nil, nil
	}

	value, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, nil
	}

	var days float64
	switch m[2] {
	case "h":
		days = float64(value) / 24
	case "d":
		days = float64(value)
	case "w":
		days = float64(value) * 7
	case "mo", "m":
		days = float64(value) * 30
	}

	posted := now.Add(-time.Duration(days * float64(24*time.Hour)))
	return &posted, &days
}

// Score maps an age in days onto the configured step function. A nil age
// yields UnknownScore.
func (c Config) Score(ageDays *float64) int {
	if ageDays == nil {
		return c.UnknownScore
	}
	for _, b := range c.Brackets {
		if *ageDays < b.MaxDays {
			return b.Score
		}
	}
	return c.FloorScore
}
