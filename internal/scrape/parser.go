// Package scrape extracts job postings from the raw listing documents the
// fetch layer retrieves. Each source has its own document layout and therefore
// its own parser, but all parsers share the freshness and classification
// engines and the same row-level tolerance: a malformed row is dropped, never
// fatal for the document.
package scrape

import (
	"fmt"
	"time"

	"github.com/jonathan/jobfeed/internal/classify"
	"github.com/jonathan/jobfeed/internal/freshness"
	"github.com/jonathan/jobfeed/internal/jobs"
)

// Parser extracts the postings contained in one source's raw document.
// Implementations derive every field of the returned postings, including
// freshness and classification tags, relative to now.
type Parser interface {
	Parse(doc string, now time.Time) ([]jobs.Posting, error)
}

// Error reports a document-level parse failure, such as a missing listing
// table. Row-level problems never produce an Error.
type Error struct {
	Source  jobs.SourceID
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error for source %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error for source %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options carries the shared derivation engines into a parser. Zero value is
// not usable; start from DefaultOptions.
type Options struct {
	Freshness freshness.Config
	Classify  classify.Config
}

// DefaultOptions returns the standard engines.
func DefaultOptions() Options {
	return Options{
		Freshness: freshness.DefaultConfig(),
		Classify:  classify.DefaultConfig(),
	}
}

// New returns the parser for a source's document layout.
func New(src jobs.Source, opts Options) (Parser, error) {
	switch src.ID {
	case jobs.SourceSimplify:
		return &simplifyParser{src: src, opts: opts}, nil
	case jobs.SourceZapply:
		return &zapplyParser{src: src, opts: opts}, nil
	case jobs.SourceZapplySWE2026:
		return &swe2026Parser{src: src, opts: opts}, nil
	default:
		return nil, &Error{Source: src.ID, Message: "no parser registered for source"}
	}
}
