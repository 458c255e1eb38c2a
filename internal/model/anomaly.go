package model

// AlertKind discriminates the anomaly alert variants.
type AlertKind string

const (
	// AlertHighValue flags an amount far above the batch mean.
	AlertHighValue AlertKind = "high_value"
	// AlertDuplicate flags the same description and amount appearing more than once.
	AlertDuplicate AlertKind = "duplicate"
	// AlertFinancialCharge flags interest, fee, and tax charges.
	AlertFinancialCharge AlertKind = "financial_charge"
)

// AnomalyAlert is a single finding of the anomaly detector. The three kinds
// are independent; one transaction can appear under more than one kind.
type AnomalyAlert struct {
	Kind        AlertKind `json:"kind"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	// Ratio is amount divided by the batch mean, set for high-value alerts.
	Ratio float64 `json:"ratio,omitempty"`
	// Occurrences is set for duplicate alerts.
	Occurrences int `json:"occurrences,omitempty"`
}

// AnomalyReport is the output of the anomaly detector.
type AnomalyReport struct {
	Alerts []AnomalyAlert `json:"alerts"`
	Count  int            `json:"count"`
}
