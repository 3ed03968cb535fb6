// Package pipeline orchestrates the per-source collection runs: fetch the
// listing document, parse it, deduplicate, replace the persisted snapshot,
// and report aggregate health across all sources.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobfeed/internal/classify"
	"github.com/jonathan/jobfeed/internal/export"
	"github.com/jonathan/jobfeed/internal/fetch"
	"github.com/jonathan/jobfeed/internal/freshness"
	"github.com/jonathan/jobfeed/internal/jobs"
	"github.com/jonathan/jobfeed/internal/scrape"
)

// Snapshotter persists one source's batch wholesale and reports its current
// row count. *db.DB satisfies it; tests substitute a fake.
type Snapshotter interface {
	ReplaceSnapshot(ctx context.Context, src jobs.Source, batch []jobs.Posting) error
	Count(ctx context.Context, src jobs.Source) (int, error)
}

// Options configures a collection run.
type Options struct {
	Sources []jobs.Source

	Fetch *fetch.Options
	Parse scrape.Options

	// CSVDir receives the companion flat-file export for each successful
	// source. Empty disables the export.
	CSVDir string

	// Parallel runs all sources concurrently instead of in order. Failures
	// stay independent either way.
	Parallel bool

	// Out receives progress output. Defaults to os.Stdout.
	Out io.Writer

	// Now is the clock used for freshness derivation. Defaults to time.Now.
	Now func() time.Time
}

// SourceResult is the outcome of one source's run.
type SourceResult struct {
	Source   jobs.Source
	Success  bool
	JobCount int

	// Batch composition, for the summary breakdown.
	FAANGCount  int
	FreshCount  int
	ClosedCount int

	Elapsed time.Duration
	Err     error
}

// syncWriter serializes progress output from concurrent source runs.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Runner executes collection runs against a snapshot store.
type Runner struct {
	store Snapshotter
	opts  Options
}

// NewRunner builds a Runner. Sources default to the built-in registry.
func NewRunner(store Snapshotter, opts Options) *Runner {
	if len(opts.Sources) == 0 {
		opts.Sources = jobs.DefaultSources()
	}
	if opts.Fetch == nil {
		opts.Fetch = fetch.DefaultOptions()
	}
	if opts.Parse.Freshness.Brackets == nil {
		opts.Parse.Freshness = freshness.DefaultConfig()
	}
	if opts.Parse.Classify.FAANG == nil {
		opts.Parse.Classify = classify.DefaultConfig()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	// Parallel runs write progress from multiple goroutines.
	opts.Out = &syncWriter{w: opts.Out}
	return &Runner{store: store, opts: opts}
}

// Run executes every configured source independently and returns the
// aggregate report. One source failing never aborts the others; Run itself
// only errors when the run could not start at all.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	started := time.Now()
	results := make([]SourceResult, len(r.opts.Sources))

	if r.opts.Parallel {
		g, gCtx := errgroup.WithContext(ctx)
		var mu sync.Mutex
		for i, src := range r.opts.Sources {
			g.Go(func() error {
				res := r.runSource(gCtx, src)
				mu.Lock()
				results[i] = res
				mu.Unlock()
				return nil // source failures are reported, never propagated
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, src := range r.opts.Sources {
			results[i] = r.runSource(ctx, src)
		}
	}

	report := &Report{
		Results:     results,
		Elapsed:     time.Since(started),
		TableCounts: r.tableCounts(ctx),
	}
	return report, nil
}

// runSource runs the full pipeline for one source. Any stage failure is
// source-fatal: the previous snapshot for that source stays untouched.
func (r *Runner) runSource(ctx context.Context, src jobs.Source) SourceResult {
	started := time.Now()
	fmt.Fprintf(r.opts.Out, "Collecting %s...\n", src.Name)

	fail := func(err error) SourceResult {
		fmt.Fprintf(r.opts.Out, "  %s failed: %v\n", src.Name, err)
		return SourceResult{Source: src, Err: err, Elapsed: time.Since(started)}
	}

	parser, err := scrape.New(src, r.opts.Parse)
	if err != nil {
		return fail(err)
	}

	doc, err := fetch.URL(ctx, src.DocumentURL, r.opts.Fetch)
	if err != nil {
		return fail(err)
	}

	batch, err := parser.Parse(doc.Body, r.opts.Now())
	if err != nil {
		return fail(err)
	}

	if len(batch) == 0 {
		// An empty batch means the document changed shape, not that every
		// job disappeared. Keep the previous snapshot.
		return fail(fmt.Errorf("no postings extracted from %s", src.DocumentURL))
	}

	if err := r.store.ReplaceSnapshot(ctx, src, batch); err != nil {
		return fail(err)
	}

	if r.opts.CSVDir != "" {
		if path, err := export.WriteCSVFile(r.opts.CSVDir, src, batch); err != nil {
			fmt.Fprintf(r.opts.Out, "  warning: CSV export failed: %v\n", err)
		} else {
			fmt.Fprintf(r.opts.Out, "  exported %s\n", path)
		}
	}

	var faang, fresh, closed int
	for i := range batch {
		if batch[i].IsFAANG {
			faang++
		}
		if batch[i].IsFresh() {
			fresh++
		}
		if batch[i].IsClosed {
			closed++
		}
	}

	elapsed := time.Since(started)
	fmt.Fprintf(r.opts.Out, "  %s completed: %d jobs in %.1fs\n", src.Name, len(batch), elapsed.Seconds())
	return SourceResult{
		Source:      src,
		Success:     true,
		JobCount:    len(batch),
		FAANGCount:  faang,
		FreshCount:  fresh,
		ClosedCount: closed,
		Elapsed:     elapsed,
	}
}

// tableCounts reads the post-run row count of every source table, to catch
// silent write failures. Count errors surface as -1 in the report.
func (r *Runner) tableCounts(ctx context.Context) map[string]int {
	counts := make(map[string]int, len(r.opts.Sources))
	for _, src := range r.opts.Sources {
		n, err := r.store.Count(ctx, src)
		if err != nil {
			fmt.Fprintf(r.opts.Out, "  warning: could not count %s: %v\n", src.Table, err)
			counts[src.Table] = -1
			continue
		}
		counts[src.Table] = n
	}
	return counts
}
