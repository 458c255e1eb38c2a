package model

// Category identifies one entry of the fixed classification taxonomy.
type Category struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Confidence indicates how a classification was reached.
type Confidence string

const (
	// ConfidenceHigh means a configured keyword matched the description.
	ConfidenceHigh Confidence = "high"
	// ConfidenceLow means no keyword matched and the fallback category was used.
	ConfidenceLow Confidence = "low"
)

// Classification is the result of classifying a single transaction.
type Classification struct {
	Transaction Transaction `json:"transaction"`
	Category    Category    `json:"category"`
	Confidence  Confidence  `json:"confidence"`
}

// CategorySummary aggregates spending for one category within a batch.
type CategorySummary struct {
	Category Category `json:"category"`
	Total    float64  `json:"total"`
	Percent  float64  `json:"percent"`
	Count    int      `json:"count"`
}

// BatchAnalysis is the output of classifying a whole statement.
type BatchAnalysis struct {
	Total      float64           `json:"total"`
	Count      int               `json:"count"`
	AvgTicket  float64           `json:"avg_ticket"`
	ByCategory []CategorySummary `json:"by_category"`
	// Classified holds a bounded display slice of the batch, in input order.
	Classified []Classification `json:"classified"`
}
