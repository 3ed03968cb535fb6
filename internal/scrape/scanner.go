package scrape

import (
	"regexp"
	"strings"
)

// scanState is the position of the Scanner within a document.
type scanState int

const (
	// stateSeekingSectionHeader: before any section heading has been seen.
	stateSeekingSectionHeader scanState = iota
	// stateSeekingTableStart: section context is known, waiting for the
	// separator row that opens a table.
	stateSeekingTableStart
	// stateInTable: yielding rows until a line stops looking like one.
	stateInTable
)

// RawRow is one extracted table row plus the section context in effect when
// it was read.
type RawRow struct {
	Cells []string

	// Company carries the nearest section heading, for sources whose tables
	// omit the company column.
	Company string

	// Archived is set for rows that appear after an archive heading.
	Archived bool
}

// Scanner is a line-oriented state machine over pipe-delimited Markdown
// tables. It knows nothing about what the cells mean; parsers interpret the
// rows it yields.
type Scanner struct {
	// Heading captures the carried company context in its first group. Nil
	// when the source's tables carry the company in a cell instead.
	Heading *regexp.Regexp

	// Archive reports whether a line opens an archived section. Once seen,
	// every following row is marked archived. Nil disables the check.
	Archive func(line string) bool

	// MinCells is the smallest cell count a well-formed row can have. Rows
	// below it are dropped.
	MinCells int
}

var separatorCharsRe = regexp.MustCompile(`^[|\s:\-]+$`)

// isSeparatorRow reports whether a line is the dashes-and-pipes row that
// separates a table header from its body.
func isSeparatorRow(line string) bool {
	return strings.Contains(line, "|") && strings.Contains(line, "---") &&
		separatorCharsRe.MatchString(line)
}

// splitCells splits a pipe-delimited line into trimmed, non-empty cells.
func splitCells(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		if cell := strings.TrimSpace(part); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Scan walks the document line by line and yields every well-formed table
// row. Header rows sit before the separator, so they never reach the
// in-table state; short rows inside a table are dropped.
func (s *Scanner) Scan(text string) []RawRow {
	state := stateSeekingTableStart
	if s.Heading != nil {
		state = stateSeekingSectionHeader
	}

	var (
		rows     []RawRow
		company  string
		archived bool
	)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if s.Archive != nil && s.Archive(trimmed) {
			archived = true
			continue
		}

		if s.Heading != nil {
			if m := s.Heading.FindStringSubmatch(trimmed); m != nil {
				company = strings.TrimSpace(m[1])
				state = stateSeekingTableStart
				continue
			}
		}

		switch state {
		case stateSeekingSectionHeader, stateSeekingTableStart:
			if isSeparatorRow(trimmed) {
				state = stateInTable
			}

		case stateInTable:
			if !strings.Contains(trimmed, "|") {
				state = stateSeekingTableStart
				continue
			}
			if isSeparatorRow(trimmed) {
				continue
			}
			cells := splitCells(trimmed)
			if len(cells) < s.MinCells {
				continue
			}
			rows = append(rows, RawRow{Cells: cells, Company: company, Archived: archived})
		}
	}

	return rows
}
