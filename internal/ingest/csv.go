// Package ingest parses statement files into transaction batches. Parsers
// never fail on individual bad rows: each unparseable record surfaces as a
// skipped-item diagnostic in the result.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/fbarros/fatura/internal/model"
)

// SkippedRecord describes one record a parser could not turn into a
// transaction.
type SkippedRecord struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Result is a parsed batch plus its skipped-item diagnostics.
type Result struct {
	Transactions []model.Transaction `json:"transactions"`
	Skipped      []SkippedRecord     `json:"skipped,omitempty"`
}

// ParseCSV reads statement rows of the form description,amount[,date]. A
// first row whose amount column does not parse is treated as a header. Any
// other bad row is recorded as skipped and parsing continues.
func ParseCSV(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var result Result
	line := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedRecord{
				Line:   line,
				Reason: fmt.Sprintf("malformed row: %v", err),
			})
			continue
		}

		if len(record) < 2 {
			result.Skipped = append(result.Skipped, SkippedRecord{
				Line:   line,
				Reason: "need at least description and amount columns",
			})
			continue
		}

		amount, err := parseAmount(record[1])
		if err != nil {
			if line == 1 {
				// Header row.
				continue
			}
			result.Skipped = append(result.Skipped, SkippedRecord{
				Line:   line,
				Reason: fmt.Sprintf("bad amount %q", record[1]),
			})
			continue
		}

		txn := model.Transaction{
			Description: strings.TrimSpace(record[0]),
			Amount:      amount,
		}
		if len(record) >= 3 {
			txn.Date = strings.TrimSpace(record[2])
		}
		result.Transactions = append(result.Transactions, txn)
	}

	return result, nil
}

// parseAmount accepts both 1234.56 and Brazilian 1.234,56 forms, with an
// optional R$ prefix. Statement credits come in negative; the analyses only
// care about magnitude.
func parseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return math.Abs(v), nil
}
