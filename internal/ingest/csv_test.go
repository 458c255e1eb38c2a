package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	input := `description,amount,date
IFOOD,45.90,2025-08-02
NETFLIX.COM,"39,90",2025-08-05
POSTO SHELL,R$ 250.00,2025-08-10
`

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 3)
	assert.Empty(t, result.Skipped)

	assert.Equal(t, "IFOOD", result.Transactions[0].Description)
	assert.Equal(t, 45.90, result.Transactions[0].Amount)
	assert.Equal(t, "2025-08-02", result.Transactions[0].Date)

	// Brazilian decimal comma and currency prefix both parse.
	assert.Equal(t, 39.90, result.Transactions[1].Amount)
	assert.Equal(t, 250.00, result.Transactions[2].Amount)
}

func TestParseCSV_NoHeader(t *testing.T) {
	input := "IFOOD,45.90\nUBER,18.50\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, result.Transactions, 2)
	assert.Empty(t, result.Skipped)
}

func TestParseCSV_SkippedRowsAreReported(t *testing.T) {
	input := `IFOOD,45.90
PADARIA,not-a-number
SOLITARY
UBER,18.50
`

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, result.Transactions, 2)
	require.Len(t, result.Skipped, 2)
	assert.Equal(t, 2, result.Skipped[0].Line)
	assert.Contains(t, result.Skipped[0].Reason, "not-a-number")
	assert.Equal(t, 3, result.Skipped[1].Line)
}

func TestParseCSV_NegativeAmountsKeepMagnitude(t *testing.T) {
	result, err := ParseCSV(strings.NewReader("ESTORNO COMPRA,-45.90\n"))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, 45.90, result.Transactions[0].Amount)
}

func TestParseCSV_Empty(t *testing.T) {
	result, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, result.Transactions)
	assert.Empty(t, result.Skipped)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "45.90", want: 45.90},
		{in: "39,90", want: 39.90},
		{in: "1.234,56", want: 1234.56},
		{in: "R$ 99.90", want: 99.90},
		{in: "-10.00", want: 10.00},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAmount(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
