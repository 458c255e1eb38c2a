package model

// Trend classifies the month-over-month variation of total spending.
type Trend string

const (
	// TrendIncrease means spending grew against the prior period.
	TrendIncrease Trend = "increase"
	// TrendDecrease means spending shrank against the prior period.
	TrendDecrease Trend = "decrease"
	// TrendStable means spending did not change.
	TrendStable Trend = "stable"
)

// PeriodSummary is the persisted snapshot of one analyzed period, used for
// month-over-month comparison.
type PeriodSummary struct {
	Period      string  `json:"period"` // YYYY-MM, sortable
	Total       float64 `json:"total"`
	Count       int     `json:"count"`
	TopCategory string  `json:"top_category,omitempty"`
}

// PeriodComparison relates the current batch to a prior period summary.
type PeriodComparison struct {
	PriorTotal   float64 `json:"prior_total"`
	CurrentTotal float64 `json:"current_total"`
	Variation    float64 `json:"variation"`
	VariationPct float64 `json:"variation_pct"`
	Trend        Trend   `json:"trend"`
}

// MonthlyReport aggregates one classification, subscription, and anomaly
// pass, plus the optional utilization and prior-period sections.
type MonthlyReport struct {
	Analysis      BatchAnalysis      `json:"analysis"`
	Subscriptions SubscriptionReport `json:"subscriptions"`
	Anomalies     AnomalyReport      `json:"anomalies"`
	Utilization   *UtilizationReport `json:"utilization,omitempty"`
	Comparison    *PeriodComparison  `json:"comparison,omitempty"`
	Insights      []string           `json:"insights"`
}
