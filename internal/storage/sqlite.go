// Package storage persists period summaries so consecutive statements can
// be compared month over month.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/fbarros/fatura/internal/common"
	"github.com/fbarros/fatura/internal/model"
)

// SQLiteStorage implements period-summary persistence using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage opens (and creates if needed) the database at dbPath.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: dbPath cannot be empty", common.ErrInvalidInput)
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{db: db, dbPath: dbPath}, nil
}

// Migrate creates the schema if it does not exist yet.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS period_summaries (
			period TEXT PRIMARY KEY,
			total REAL NOT NULL,
			tx_count INTEGER NOT NULL,
			top_category TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SavePeriodSummary inserts or replaces the snapshot for a period.
func (s *SQLiteStorage) SavePeriodSummary(ctx context.Context, summary model.PeriodSummary) error {
	if summary.Period == "" {
		return fmt.Errorf("%w: period cannot be empty", common.ErrInvalidInput)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO period_summaries (period, total, tx_count, top_category)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(period) DO UPDATE SET
			total = excluded.total,
			tx_count = excluded.tx_count,
			top_category = excluded.top_category,
			created_at = CURRENT_TIMESTAMP`,
		summary.Period, summary.Total, summary.Count, summary.TopCategory)
	if err != nil {
		return fmt.Errorf("failed to save period summary: %w", err)
	}
	return nil
}

// GetPeriodSummary returns the snapshot for one period.
func (s *SQLiteStorage) GetPeriodSummary(ctx context.Context, period string) (*model.PeriodSummary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT period, total, tx_count, top_category
		FROM period_summaries WHERE period = ?`, period)
	return scanSummary(row)
}

// LatestPeriodBefore returns the most recent snapshot strictly older than
// the given period. Periods are YYYY-MM strings, so lexicographic order is
// chronological order.
func (s *SQLiteStorage) LatestPeriodBefore(ctx context.Context, period string) (*model.PeriodSummary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT period, total, tx_count, top_category
		FROM period_summaries WHERE period < ?
		ORDER BY period DESC LIMIT 1`, period)
	return scanSummary(row)
}

// ListPeriodSummaries returns all snapshots, oldest first.
func (s *SQLiteStorage) ListPeriodSummaries(ctx context.Context) ([]model.PeriodSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT period, total, tx_count, top_category
		FROM period_summaries ORDER BY period`)
	if err != nil {
		return nil, fmt.Errorf("failed to list period summaries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var summaries []model.PeriodSummary
	for rows.Next() {
		var s model.PeriodSummary
		var topCategory sql.NullString
		if err := rows.Scan(&s.Period, &s.Total, &s.Count, &topCategory); err != nil {
			return nil, fmt.Errorf("failed to scan period summary: %w", err)
		}
		s.TopCategory = topCategory.String
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate period summaries: %w", err)
	}
	return summaries, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

func scanSummary(row *sql.Row) (*model.PeriodSummary, error) {
	var s model.PeriodSummary
	var topCategory sql.NullString
	err := row.Scan(&s.Period, &s.Total, &s.Count, &topCategory)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan period summary: %w", err)
	}
	s.TopCategory = topCategory.String
	return &s, nil
}
