// Package store provides SQLite-backed numeral lookup tables.
//
// An export run encodes a value range and writes one row per value:
//   - runs: one record per export (id, seq, range, row count)
//   - numerals: value -> numeral, tagged with the run that last wrote it
//
// Re-exporting a value replaces its row, so the table always reflects the
// latest run. Runs are ordered by seq, never by wall time, so two exports of
// the same range produce identical tables.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
