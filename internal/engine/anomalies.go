package engine

import (
	"strings"

	"github.com/fbarros/fatura/internal/model"
)

// DetectAnomalies runs three independent tests over a batch and returns
// their findings in a fixed order: high-value alerts in batch order, then
// duplicate alerts in first-seen group order, then financial-charge alerts
// in batch order. A single transaction can fire more than one test. An
// empty batch yields no alerts.
func (a *Analyzer) DetectAnomalies(txns []model.Transaction) model.AnomalyReport {
	var alerts []model.AnomalyAlert

	// High-value: amount must clear both the mean multiple and the
	// absolute floor, so small statements with low means stay quiet.
	if len(txns) > 0 {
		var sum float64
		for _, t := range txns {
			sum += t.Amount
		}
		mean := sum / float64(len(txns))
		if mean > 0 {
			for _, t := range txns {
				if t.Amount > mean*a.cfg.HighValueMultiplier && t.Amount > a.cfg.HighValueFloor {
					alerts = append(alerts, model.AnomalyAlert{
						Kind:        model.AlertHighValue,
						Description: t.Description,
						Amount:      t.Amount,
						Ratio:       t.Amount / mean,
					})
				}
			}
		}
	}

	// Duplicates: same lowercase description, then same exact amount,
	// appearing at least twice.
	type group struct {
		counts map[float64]int
		order  []float64
	}
	byDesc := make(map[string]*group)
	var descOrder []string

	for _, t := range txns {
		desc := strings.ToLower(t.Description)
		g, ok := byDesc[desc]
		if !ok {
			g = &group{counts: make(map[float64]int)}
			byDesc[desc] = g
			descOrder = append(descOrder, desc)
		}
		if _, seen := g.counts[t.Amount]; !seen {
			g.order = append(g.order, t.Amount)
		}
		g.counts[t.Amount]++
	}
	for _, desc := range descOrder {
		g := byDesc[desc]
		for _, amount := range g.order {
			if count := g.counts[amount]; count >= 2 {
				alerts = append(alerts, model.AnomalyAlert{
					Kind:        model.AlertDuplicate,
					Description: desc,
					Amount:      amount,
					Occurrences: count,
				})
			}
		}
	}

	// Financial charges: interest, fee, and tax keywords.
	for _, t := range txns {
		desc := strings.ToLower(t.Description)
		for _, kw := range a.cfg.ChargeKeywords {
			if strings.Contains(desc, kw) {
				alerts = append(alerts, model.AnomalyAlert{
					Kind:        model.AlertFinancialCharge,
					Description: t.Description,
					Amount:      t.Amount,
				})
				break
			}
		}
	}

	return model.AnomalyReport{Alerts: alerts, Count: len(alerts)}
}
