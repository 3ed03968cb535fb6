package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobfeed/internal/jobs"
)

// PersistError reports a failed snapshot write. It is fatal for that
// source's run but never touches other sources' tables.
type PersistError struct {
	Table   string
	Message string
	Cause   error
}

func (e *PersistError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("persist error for table %s: %s: %v", e.Table, e.Message, e.Cause)
	}
	return fmt.Sprintf("persist error for table %s: %s", e.Table, e.Message)
}

func (e *PersistError) Unwrap() error {
	return e.Cause
}

// snapshotSchema is the column layout every source table shares. The table
// name itself identifies the source.
const snapshotSchema = `
	CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		company TEXT NOT NULL,
		title TEXT NOT NULL,
		location TEXT,
		url TEXT NOT NULL,
		source TEXT NOT NULL,
		job_type TEXT,
		posted_ago TEXT,
		posted_at TIMESTAMPTZ,
		age_days DOUBLE PRECISION,
		freshness_score INTEGER NOT NULL,
		is_faang BOOLEAN NOT NULL DEFAULT FALSE,
		is_tier1 BOOLEAN NOT NULL DEFAULT FALSE,
		requires_sponsorship BOOLEAN NOT NULL DEFAULT TRUE,
		requires_citizenship BOOLEAN NOT NULL DEFAULT FALSE,
		is_closed BOOLEAN NOT NULL DEFAULT FALSE,
		requires_advanced_degree BOOLEAN NOT NULL DEFAULT FALSE,
		is_archived BOOLEAN NOT NULL DEFAULT FALSE,
		level TEXT,
		category TEXT,
		description TEXT,
		collected_at TIMESTAMPTZ NOT NULL
	)`

// ReplaceSnapshot atomically swaps the persisted batch for one source: the
// previous rows are deleted and the new batch inserted inside a single
// transaction, then the row count is verified against the batch size. On any
// error the transaction rolls back and the previous snapshot survives.
func (db *DB) ReplaceSnapshot(ctx context.Context, src jobs.Source, batch []jobs.Posting) error {
	table := pgx.Identifier{src.Table}.Sanitize()

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return &PersistError{Table: src.Table, Message: "failed to begin transaction", Cause: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, fmt.Sprintf(snapshotSchema, table)); err != nil {
		return &PersistError{Table: src.Table, Message: "failed to ensure table", Cause: err}
	}

	if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
		return &PersistError{Table: src.Table, Message: "failed to clear previous snapshot", Cause: err}
	}

	insert := fmt.Sprintf(
		`INSERT INTO %s (id, company, title, location, url, source, job_type,
		                 posted_ago, posted_at, age_days, freshness_score,
		                 is_faang, is_tier1, requires_sponsorship, requires_citizenship,
		                 is_closed, requires_advanced_degree, is_archived,
		                 level, category, description, collected_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		         $15, $16, $17, $18, $19, $20, $21, $22)`,
		table,
	)

	for _, p := range batch {
		_, err := tx.Exec(ctx, insert,
			p.ID, p.Company, p.Title, p.Location, p.URL, string(p.Source), p.JobType,
			p.PostedAgo, p.PostedAt, p.AgeDays, p.FreshnessScore,
			p.IsFAANG, p.IsTier1, p.RequiresSponsorship, p.RequiresCitizenship,
			p.IsClosed, p.RequiresAdvancedDegree, p.IsArchived,
			p.Level, p.Category, p.Description, p.CollectedAt,
		)
		if err != nil {
			return &PersistError{Table: src.Table, Message: fmt.Sprintf("failed to insert posting %s", p.URL), Cause: err}
		}
	}

	// Verify the write before committing; a silent partial write must not
	// replace a good snapshot.
	var count int
	if err := tx.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return &PersistError{Table: src.Table, Message: "failed to verify snapshot", Cause: err}
	}
	if count != len(batch) {
		return &PersistError{
			Table:   src.Table,
			Message: fmt.Sprintf("row count mismatch: wrote %d, expected %d", count, len(batch)),
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return &PersistError{Table: src.Table, Message: "failed to commit transaction", Cause: err}
	}
	return nil
}

// Count returns the number of rows currently persisted for a source. A
// missing table counts as zero, so a never-scraped source is not an error.
func (db *DB) Count(ctx context.Context, src jobs.Source) (int, error) {
	table := pgx.Identifier{src.Table}.Sanitize()

	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
		src.Table,
	).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check table %s: %w", src.Table, err)
	}
	if !exists {
		return 0, nil
	}

	var count int
	if err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", src.Table, err)
	}
	return count, nil
}
