package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chancharikmitra/vqascore/internal/workitem"
)

// IngestResult describes one loaded batch.
type IngestResult struct {
	BatchID  string
	BatchKey string
	Inserted int
	// Duplicate is set when an identical batch was already loaded.
	Duplicate bool
}

// Ingest loads scored records as one batch. Loading the same records twice is a no-op
// that returns the existing batch id.
func Ingest(ctx context.Context, db *sql.DB, source string, records []workitem.Record) (IngestResult, error) {
	if ctx == nil {
		return IngestResult{}, errors.New("duckdb: context is nil")
	}
	if db == nil {
		return IngestResult{}, errors.New("duckdb: db is nil")
	}
	if records == nil {
		records = []workitem.Record{}
	}
	key, err := FingerprintJSON(records)
	if err != nil {
		return IngestResult{}, fmt.Errorf("fingerprint batch: %w", err)
	}
	if existing, err := lookupBatchID(ctx, db, key); err == nil {
		return IngestResult{BatchID: existing, BatchKey: key, Duplicate: true}, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return IngestResult{}, fmt.Errorf("lookup batch: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return IngestResult{}, fmt.Errorf("begin ingest: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	id := uuid.NewString()
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO batches (batch_id, batch_key, source, item_count, loaded_at)
		 VALUES (?, ?, ?, ?, now())`,
		id,
		key,
		source,
		len(records),
	); err != nil {
		return IngestResult{}, fmt.Errorf("insert batch: %w", err)
	}

	stmt, err := tx.PrepareContext(
		ctx,
		`INSERT INTO scores (batch_id, item_index, video, label, question, score, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return IngestResult{}, fmt.Errorf("prepare scores: %w", err)
	}
	defer stmt.Close()
	for index, record := range records {
		if _, err := stmt.ExecContext(
			ctx,
			id,
			index,
			record.Video,
			record.Label,
			record.Question,
			nullableFloat(record.Score),
			nullableString(record.Error),
		); err != nil {
			return IngestResult{}, fmt.Errorf("insert score %d: %w", index, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return IngestResult{}, fmt.Errorf("commit ingest: %w", err)
	}
	return IngestResult{BatchID: id, BatchKey: key, Inserted: len(records)}, nil
}

// lookupBatchID fetches the batch id for a fingerprint key.
func lookupBatchID(ctx context.Context, db *sql.DB, key string) (string, error) {
	var id string
	err := db.QueryRowContext(ctx, "SELECT CAST(batch_id AS VARCHAR) FROM batches WHERE batch_key = ?", key).Scan(&id)
	return id, err
}

// nullableFloat converts an optional score into a SQL argument.
func nullableFloat(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}

// nullableString converts an empty string into SQL NULL.
func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
