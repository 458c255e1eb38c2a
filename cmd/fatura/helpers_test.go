package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStatement(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadTransactionsCSV(t *testing.T) {
	path := writeStatement(t, "statement.csv",
		"descricao,valor,data\nIFOOD *RESTAURANTE,45.90,2026-07-02\nUBER *TRIP,\"R$ 23,50\",2026-07-05\n")

	txns, err := loadTransactions(path)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "IFOOD *RESTAURANTE", txns[0].Description)
	assert.InDelta(t, 45.90, txns[0].Amount, 0.001)
	assert.Equal(t, "2026-07-02", txns[0].Date)
	assert.InDelta(t, 23.50, txns[1].Amount, 0.001)
}

func TestLoadTransactionsUnsupportedExtension(t *testing.T) {
	path := writeStatement(t, "statement.pdf", "not a statement")

	_, err := loadTransactions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported statement format")
}

func TestLoadTransactionsMissingFile(t *testing.T) {
	_, err := loadTransactions(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestPeriodPattern(t *testing.T) {
	tests := []struct {
		period string
		valid  bool
	}{
		{"2026-07", true},
		{"2026-12", true},
		{"2026-01", true},
		{"2026-13", false},
		{"2026-00", false},
		{"202607", false},
		{"07-2026", false},
		{"2026-7", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			assert.Equal(t, tt.valid, periodPattern.MatchString(tt.period))
		})
	}
}
