package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/fbarros/fatura/internal/config"
	"github.com/fbarros/fatura/internal/engine"
	"github.com/fbarros/fatura/internal/ingest"
	"github.com/fbarros/fatura/internal/model"
	"github.com/fbarros/fatura/internal/storage"
)

// newAnalyzer builds the analysis engine from configuration.
func newAnalyzer() (*engine.Analyzer, error) {
	cfg, err := config.LoadAnalysis()
	if err != nil {
		return nil, fmt.Errorf("loading analysis config: %w", err)
	}
	return engine.New(cfg), nil
}

// initStorage opens the SQLite store and runs migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(config.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return store, nil
}

// loadTransactions reads a statement file, picking the parser by extension.
// Skipped rows are logged, not fatal.
func loadTransactions(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statement file: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading statement file: %w", err)
	}

	bar := progressbar.DefaultBytes(info.Size(), "Reading statement...")
	reader := io.TeeReader(f, bar)

	var result ingest.Result
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		result, err = ingest.ParseCSV(reader)
	case ".ofx", ".qfx":
		result, err = ingest.ParseOFX(reader)
	default:
		return nil, fmt.Errorf("unsupported statement format %q (want .csv, .ofx or .qfx)", filepath.Ext(path))
	}
	_ = bar.Finish()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	for _, skipped := range result.Skipped {
		slog.Warn("Skipped statement row", "line", skipped.Line, "reason", skipped.Reason)
	}
	slog.Info("Statement loaded", "file", filepath.Base(path), "transactions", len(result.Transactions), "skipped", len(result.Skipped))

	return result.Transactions, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
