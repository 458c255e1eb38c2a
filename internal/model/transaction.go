// Package model defines the core domain models used throughout the application.
package model

// Transaction represents a single statement line item from any source.
// A batch is an ordered slice of these; order only matters for display
// slices, never for analysis results.
type Transaction struct {
	Description string  `json:"description"`
	Date        string  `json:"date,omitempty"` // as printed on the statement, optional
	Amount      float64 `json:"amount"`
}
