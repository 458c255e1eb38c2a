package engine

import (
	"fmt"

	"github.com/fbarros/fatura/internal/common"
	"github.com/fbarros/fatura/internal/model"
)

// AnalyzeUtilization scores credit-limit usage. The tier bands on the used
// percentage are closed on their upper bound: ≤30 healthy, ≤50 attention,
// ≤70 alert, above that critical.
func (a *Analyzer) AnalyzeUtilization(limit, balance, committed float64) (model.UtilizationReport, error) {
	if limit <= 0 {
		return model.UtilizationReport{}, fmt.Errorf("%w: limit must be greater than zero, got %.2f", common.ErrInvalidInput, limit)
	}

	usedPct := balance / limit * 100
	totalCommitted := balance + committed
	committedPct := totalCommitted / limit * 100
	available := limit - totalCommitted
	if available < 0 {
		available = 0
	}

	var tier model.UtilizationTier
	switch {
	case usedPct <= 30:
		tier = model.TierHealthy
	case usedPct <= 50:
		tier = model.TierAttention
	case usedPct <= 70:
		tier = model.TierAlert
	default:
		tier = model.TierCritical
	}

	return model.UtilizationReport{
		Limit:          limit,
		Balance:        balance,
		Committed:      committed,
		TotalCommitted: round2(totalCommitted),
		Available:      round2(available),
		UsedPct:        usedPct,
		CommittedPct:   committedPct,
		Tier:           tier,
	}, nil
}
