package engine

import (
	"sort"
	"strings"

	"github.com/fbarros/fatura/internal/model"
)

// Classify maps a free-text description to a category. Categories are
// tested in configuration order and the first keyword substring match wins;
// with no match the fallback category is returned with low confidence.
// Classify is total: empty and unknown descriptions classify as fallback.
func (a *Analyzer) Classify(description string, amount float64) model.Classification {
	desc := strings.ToLower(description)

	for _, cat := range a.cfg.Categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(desc, kw) {
				return model.Classification{
					Transaction: model.Transaction{Description: description, Amount: amount},
					Category:    cat.Category(),
					Confidence:  model.ConfidenceHigh,
				}
			}
		}
	}

	return model.Classification{
		Transaction: model.Transaction{Description: description, Amount: amount},
		Category:    a.cfg.Fallback.Category(),
		Confidence:  model.ConfidenceLow,
	}
}

// AnalyzeBatch classifies a whole statement and aggregates spending per
// category. The per-category breakdown is sorted by total, descending;
// ties keep first-encountered order. An empty batch yields a zero-valued
// analysis, never an error.
func (a *Analyzer) AnalyzeBatch(txns []model.Transaction) model.BatchAnalysis {
	if len(txns) == 0 {
		return model.BatchAnalysis{}
	}

	var (
		total      float64
		classified = make([]model.Classification, 0, len(txns))
		totals     = make(map[string]float64)
		counts     = make(map[string]int)
		order      []model.Category
	)

	for _, t := range txns {
		c := a.Classify(t.Description, t.Amount)
		c.Transaction.Date = t.Date
		classified = append(classified, c)

		if _, seen := totals[c.Category.Slug]; !seen {
			order = append(order, c.Category)
		}
		totals[c.Category.Slug] += t.Amount
		counts[c.Category.Slug]++
		total += t.Amount
	}

	byCategory := make([]model.CategorySummary, 0, len(order))
	for _, cat := range order {
		v := totals[cat.Slug]
		pct := 0.0
		if total > 0 {
			pct = v / total * 100
		}
		byCategory = append(byCategory, model.CategorySummary{
			Category: cat,
			Total:    round2(v),
			Percent:  pct,
			Count:    counts[cat.Slug],
		})
	}
	sort.SliceStable(byCategory, func(i, j int) bool {
		return byCategory[i].Total > byCategory[j].Total
	})

	if len(classified) > a.cfg.ClassifiedCap {
		classified = classified[:a.cfg.ClassifiedCap]
	}

	return model.BatchAnalysis{
		Total:      round2(total),
		Count:      len(txns),
		AvgTicket:  round2(total / float64(len(txns))),
		ByCategory: byCategory,
		Classified: classified,
	}
}
