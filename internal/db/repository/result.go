// Package repository implements the storage-backed repositories over the
// SQLite store.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"voicequery/internal/domain"
)

// ResultRepo implements domain.ResultRepository over the last_results table.
// The table is append-only: records are never updated or deleted here, and
// "most recent" is always the row with the maximum storage-generated id.
type ResultRepo struct {
	writeDB *sql.DB
	readDB  *sql.DB
}

// NewResultRepo creates a ResultRepo. Appends go to writeDB, reads to readDB.
func NewResultRepo(writeDB, readDB *sql.DB) *ResultRepo {
	return &ResultRepo{writeDB: writeDB, readDB: readDB}
}

// Append inserts one result record and returns it with its generated id.
func (r *ResultRepo) Append(ctx context.Context, rows json.RawMessage) (*domain.ResultRecord, error) {
	if len(rows) == 0 {
		rows = json.RawMessage("[]")
	}

	res, err := r.writeDB.ExecContext(ctx,
		`INSERT INTO last_results (rows) VALUES (?)`, string(rows))
	if err != nil {
		return nil, fmt.Errorf("insert result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("result id: %w", err)
	}

	rec := &domain.ResultRecord{ID: id, Rows: rows}
	_ = r.readDB.QueryRowContext(ctx,
		`SELECT created_at FROM last_results WHERE id = ?`, id).Scan(&rec.CreatedAt)
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	return rec, nil
}

// Latest returns the record with the maximum id, or (nil, nil) when the cache
// is empty.
func (r *ResultRepo) Latest(ctx context.Context) (*domain.ResultRecord, error) {
	var (
		rec      domain.ResultRecord
		rowsText string
	)
	err := r.readDB.QueryRowContext(ctx,
		`SELECT id, rows, created_at FROM last_results ORDER BY id DESC LIMIT 1`).
		Scan(&rec.ID, &rowsText, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest result: %w", err)
	}

	rec.Rows = json.RawMessage(rowsText)
	return &rec, nil
}
