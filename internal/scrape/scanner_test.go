package scrape

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeadingRe = regexp.MustCompile(`^##\s+\*\*([A-Za-z0-9\s&.]+)\*\*`)

func TestScanner_YieldsRowsOnlyAfterSeparator(t *testing.T) {
	doc := strings.Join([]string{
		"| this | looks | like | a row |",
		"",
		"| Role | Location | Posted | Level |",
		"| --- | --- | --- | --- |",
		"| Engineer | NYC | 3d ago | Entry |",
	}, "\n")

	scanner := &Scanner{MinCells: 4}
	rows := scanner.Scan(doc)

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Engineer", "NYC", "3d ago", "Entry"}, rows[0].Cells)
}

func TestScanner_HeadingCarriesCompanyContext(t *testing.T) {
	doc := strings.Join([]string{
		"## **Google**",
		"| Role | Location |",
		"| --- | --- |",
		"| SWE | NYC |",
		"",
		"## **Stripe & Co.**",
		"| Role | Location |",
		"| --- | --- |",
		"| Backend | SF |",
	}, "\n")

	scanner := &Scanner{Heading: testHeadingRe, MinCells: 2}
	rows := scanner.Scan(doc)

	require.Len(t, rows, 2)
	assert.Equal(t, "Google", rows[0].Company)
	assert.Equal(t, "Stripe & Co.", rows[1].Company)
}

func TestScanner_DropsShortRowsKeepsScanning(t *testing.T) {
	doc := strings.Join([]string{
		"| Role | Location | Posted |",
		"| --- | --- | --- |",
		"| SWE | NYC | 3d ago |",
		"| broken row |",
		"| SRE | SF | 1w ago |",
	}, "\n")

	scanner := &Scanner{MinCells: 3}
	rows := scanner.Scan(doc)

	require.Len(t, rows, 2)
	assert.Equal(t, "SWE", rows[0].Cells[0])
	assert.Equal(t, "SRE", rows[1].Cells[0])
}

func TestScanner_NonTableLineEndsTable(t *testing.T) {
	doc := strings.Join([]string{
		"| Role | Location |",
		"| --- | --- |",
		"| SWE | NYC |",
		"Some prose between tables.",
		"| SRE | SF |", // no separator seen again, so not a table row
	}, "\n")

	scanner := &Scanner{MinCells: 2}
	rows := scanner.Scan(doc)

	require.Len(t, rows, 1)
	assert.Equal(t, "SWE", rows[0].Cells[0])
}

func TestScanner_ArchiveHeadingMarksFollowingRows(t *testing.T) {
	doc := strings.Join([]string{
		"| Company | Role |",
		"| --- | --- |",
		"| Acme | SWE |",
		"",
		"## Archived Jobs",
		"",
		"| Company | Role |",
		"| --- | --- |",
		"| Initech | SWE |",
	}, "\n")

	scanner := &Scanner{
		Archive:  func(line string) bool { return strings.Contains(strings.ToLower(line), "archived") },
		MinCells: 2,
	}
	rows := scanner.Scan(doc)

	require.Len(t, rows, 2)
	assert.False(t, rows[0].Archived)
	assert.True(t, rows[1].Archived)
}

func TestScanner_EmptyDocument(t *testing.T) {
	scanner := &Scanner{MinCells: 2}
	assert.Empty(t, scanner.Scan(""))
}

func TestSplitCells_TrimsAndDropsEmpty(t *testing.T) {
	cells := splitCells("| a |  b  | | c |")
	assert.Equal(t, []string{"a", "b", "c"}, cells)
}

func TestIsSeparatorRow(t *testing.T) {
	assert.True(t, isSeparatorRow("| --- | --- |"))
	assert.True(t, isSeparatorRow("|---|---|"))
	assert.True(t, isSeparatorRow("| :--- | ---: |"))
	assert.False(t, isSeparatorRow("| Role | Location |"))
	assert.False(t, isSeparatorRow("---")) // horizontal rule, not a table separator
}
