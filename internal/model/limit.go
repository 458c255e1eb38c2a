package model

// UtilizationTier is the qualitative health band for credit-limit usage.
type UtilizationTier string

const (
	// TierHealthy covers usage up to 30% of the limit.
	TierHealthy UtilizationTier = "healthy"
	// TierAttention covers usage above 30% up to 50%.
	TierAttention UtilizationTier = "attention"
	// TierAlert covers usage above 50% up to 70%.
	TierAlert UtilizationTier = "alert"
	// TierCritical covers usage above 70%.
	TierCritical UtilizationTier = "critical"
)

// UtilizationReport is the output of the credit-limit analyzer.
type UtilizationReport struct {
	Limit          float64         `json:"limit"`
	Balance        float64         `json:"balance"`
	Committed      float64         `json:"committed"`
	TotalCommitted float64         `json:"total_committed"`
	Available      float64         `json:"available"`
	UsedPct        float64         `json:"used_pct"`
	CommittedPct   float64         `json:"committed_pct"`
	Tier           UtilizationTier `json:"tier"`
}

// InstallmentPlan is the output of the installment simulator.
type InstallmentPlan struct {
	Principal         float64 `json:"principal"`
	Installments      int     `json:"installments"`
	MonthlyRate       float64 `json:"monthly_rate"`
	InstallmentAmount float64 `json:"installment_amount"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
}
