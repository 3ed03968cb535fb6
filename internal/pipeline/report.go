package pipeline

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Report aggregates one full collection run across all sources.
type Report struct {
	Results []SourceResult
	Elapsed time.Duration

	// TableCounts holds the post-run row count per snapshot table. -1 marks
	// a table whose count could not be read.
	TableCounts map[string]int
}

// TotalJobs sums the jobs collected by the successful sources.
func (r *Report) TotalJobs() int {
	total := 0
	for _, res := range r.Results {
		total += res.JobCount
	}
	return total
}

// SuccessCount returns how many sources completed their run.
func (r *Report) SuccessCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Success {
			n++
		}
	}
	return n
}

// AnySucceeded reports whether at least one source completed. The run as a
// whole only fails when every source failed.
func (r *Report) AnySucceeded() bool {
	return r.SuccessCount() > 0
}

// Write prints the run summary: totals, per-source breakdown, and the row
// counts actually present in each persisted table.
func (r *Report) Write(w io.Writer) {
	line := strings.Repeat("=", 70)

	fmt.Fprintf(w, "\n%s\n", line)
	fmt.Fprintln(w, "COLLECTION SUMMARY")
	fmt.Fprintf(w, "%s\n", line)

	fmt.Fprintf(w, "\nTotal jobs collected: %d\n", r.TotalJobs())
	fmt.Fprintf(w, "Total time: %.1f seconds\n", r.Elapsed.Seconds())
	fmt.Fprintf(w, "Successful sources: %d/%d\n", r.SuccessCount(), len(r.Results))

	fmt.Fprintln(w, "\nBreakdown:")
	for _, res := range r.Results {
		status := "OK  "
		if !res.Success {
			status = "FAIL"
		}
		fmt.Fprintf(w, "  [%s] %s: %d jobs in %.1fs", status, res.Source.Name, res.JobCount, res.Elapsed.Seconds())
		if res.Success {
			fmt.Fprintf(w, " (%d FAANG, %d fresh, %d closed)", res.FAANGCount, res.FreshCount, res.ClosedCount)
		}
		if res.Err != nil {
			fmt.Fprintf(w, " (%v)", res.Err)
		}
		fmt.Fprintln(w)
	}

	if len(r.TableCounts) > 0 {
		fmt.Fprintln(w, "\nDatabase totals:")
		tables := make([]string, 0, len(r.TableCounts))
		for table := range r.TableCounts {
			tables = append(tables, table)
		}
		sort.Strings(tables)

		total := 0
		for _, table := range tables {
			count := r.TableCounts[table]
			if count < 0 {
				fmt.Fprintf(w, "  - %s: unavailable\n", table)
				continue
			}
			total += count
			fmt.Fprintf(w, "  - %s: %d jobs\n", table, count)
		}
		fmt.Fprintf(w, "  TOTAL IN DATABASE: %d jobs\n", total)
	}

	fmt.Fprintf(w, "%s\n", line)
}
