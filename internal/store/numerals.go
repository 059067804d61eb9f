package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned by lookups when no row matches.
var ErrNotFound = errors.New("numeral not found")

// EncodeFunc converts one value to its numeral.
type EncodeFunc func(value int) (string, error)

// Run describes one export.
type Run struct {
	ID       string `json:"id" yaml:"id"`
	Seq      int64  `json:"seq" yaml:"seq"`
	MinValue int    `json:"min_value" yaml:"min_value"`
	MaxValue int    `json:"max_value" yaml:"max_value"`
	RowCount int    `json:"row_count" yaml:"row_count"`
}

// ExportRange encodes every value in [from, to] and writes it in one transaction.
// Existing rows for the same values are replaced. If encode fails for any
// value nothing is written.
func (s *Store) ExportRange(ctx context.Context, runID string, from, to int, encode EncodeFunc) (*Run, error) {
	if from < 1 || to < from {
		return nil, fmt.Errorf("export range [%d, %d] is empty or not positive", from, to)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM runs`).Scan(&seq); err != nil {
		return nil, fmt.Errorf("next run seq: %w", err)
	}

	run := &Run{
		ID:       runID,
		Seq:      seq,
		MinValue: from,
		MaxValue: to,
		RowCount: to - from + 1,
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, seq, min_value, max_value, row_count)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Seq, run.MinValue, run.MaxValue, run.RowCount)
	if err != nil {
		return nil, fmt.Errorf("insert run %s: %w", runID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO numerals (value, numeral, run_id)
		VALUES (?, ?, ?)
		ON CONFLICT(value) DO UPDATE SET numeral = excluded.numeral, run_id = excluded.run_id
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare numeral insert: %w", err)
	}
	defer stmt.Close()

	for v := from; v <= to; v++ {
		numeral, err := encode(v)
		if err != nil {
			return nil, fmt.Errorf("encode %d: %w", v, err)
		}
		if _, err := stmt.ExecContext(ctx, v, numeral, runID); err != nil {
			return nil, fmt.Errorf("insert numeral %d: %w", v, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit export: %w", err)
	}
	return run, nil
}

// LookupValue returns the numeral stored for value.
func (s *Store) LookupValue(ctx context.Context, value int) (string, error) {
	var numeral string
	err := s.db.QueryRowContext(ctx, `SELECT numeral FROM numerals WHERE value = ?`, value).Scan(&numeral)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("value %d: %w", value, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("lookup value %d: %w", value, err)
	}
	return numeral, nil
}

// LookupNumeral returns the value stored for numeral.
// Only numerals written by an export match; non-canonical spellings do not.
func (s *Store) LookupNumeral(ctx context.Context, numeral string) (int, error) {
	var value int
	err := s.db.QueryRowContext(ctx, `SELECT value FROM numerals WHERE numeral = ?`, numeral).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("numeral %q: %w", numeral, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("lookup numeral %q: %w", numeral, err)
	}
	return value, nil
}

// Count returns the number of stored numerals.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM numerals`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count numerals: %w", err)
	}
	return n, nil
}

// Runs returns all export runs ordered by seq.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seq, min_value, max_value, row_count
		FROM runs
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Seq, &r.MinValue, &r.MaxValue, &r.RowCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
