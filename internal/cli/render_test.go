package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fbarros/fatura/internal/model"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "R$ 45.90", Money(45.9))
	assert.Equal(t, "R$ 0.00", Money(0))
}

func TestRenderBatchAnalysis(t *testing.T) {
	out := RenderBatchAnalysis(model.BatchAnalysis{
		Total:     131.70,
		Count:     3,
		AvgTicket: 43.90,
		ByCategory: []model.CategorySummary{
			{Category: model.Category{Slug: "food", Label: "Food", Icon: "🍔"}, Total: 85.80, Percent: 65.1, Count: 2},
			{Category: model.Category{Slug: "subscriptions", Label: "Subscriptions", Icon: "📺"}, Total: 45.90, Percent: 34.9, Count: 1},
		},
		Classified: []model.Classification{
			{
				Transaction: model.Transaction{Description: "IFOOD *RESTAURANTE", Amount: 45.90},
				Category:    model.Category{Slug: "food", Label: "Food", Icon: "🍔"},
				Confidence:  model.ConfidenceHigh,
			},
			{
				Transaction: model.Transaction{Description: "LOJA DESCONHECIDA", Amount: 39.90},
				Category:    model.Category{Slug: "other", Label: "Other", Icon: "❓"},
				Confidence:  model.ConfidenceLow,
			},
		},
	})

	assert.Contains(t, out, "R$ 131.70")
	assert.Contains(t, out, "Food")
	assert.Contains(t, out, "65.1%")
	assert.Contains(t, out, "×2")
	assert.Contains(t, out, "IFOOD *RESTAURANTE")
	assert.Contains(t, out, "unrecognized")
}

func TestRenderSubscriptionReport(t *testing.T) {
	out := RenderSubscriptionReport(model.SubscriptionReport{
		Known: []model.KnownSubscription{
			{Service: "Netflix", Amount: 44.90, Status: model.SubscriptionNormal, TypicalLow: 22.90, TypicalMax: 55.90},
			{Service: "Spotify", Amount: 99.90, Status: model.SubscriptionAtypical, TypicalLow: 11.90, TypicalMax: 34.90},
		},
		TotalKnown: 144.80,
		Candidates: []model.RecurrenceCandidate{
			{Key: "ACADEMIA FIT", Occurrences: 3, PossibleSubscription: true},
		},
	})

	assert.Contains(t, out, "Netflix")
	assert.Contains(t, out, "atypical")
	assert.Contains(t, out, "R$ 144.80")
	assert.Contains(t, out, "ACADEMIA FIT")
	assert.Contains(t, out, "×3")
}

func TestRenderSubscriptionReportEmpty(t *testing.T) {
	out := RenderSubscriptionReport(model.SubscriptionReport{})
	assert.Contains(t, out, "No known subscription services")
}

func TestRenderAnomalyReport(t *testing.T) {
	out := RenderAnomalyReport(model.AnomalyReport{
		Alerts: []model.AnomalyAlert{
			{Kind: model.AlertHighValue, Description: "NOTEBOOK GAMER", Amount: 4500, Ratio: 6.2},
			{Kind: model.AlertDuplicate, Description: "uber *trip", Amount: 25.50, Occurrences: 2},
			{Kind: model.AlertFinancialCharge, Description: "IOF COMPRA INTERNACIONAL", Amount: 12.38},
		},
		Count: 3,
	})

	assert.Contains(t, out, "NOTEBOOK GAMER")
	assert.Contains(t, out, "6.2x")
	assert.Contains(t, out, "×2")
	assert.Contains(t, out, "fee/interest")
	assert.Contains(t, out, "3 alert(s)")
}

func TestRenderAnomalyReportClean(t *testing.T) {
	out := RenderAnomalyReport(model.AnomalyReport{})
	assert.Contains(t, out, "No anomalies found")
}

func TestRenderUtilization(t *testing.T) {
	out := RenderUtilization(model.UtilizationReport{
		Limit:          5000,
		Balance:        3200,
		Committed:      93.30,
		TotalCommitted: 3293.30,
		UsedPct:        64,
		CommittedPct:   65.9,
		Available:      1706.70,
		Tier:           model.TierAlert,
	})

	assert.Contains(t, out, "R$ 5000.00")
	assert.Contains(t, out, "64.0%")
	assert.Contains(t, out, "65.9%")
	assert.Contains(t, out, "alert")
	assert.Contains(t, out, "R$ 1706.70")
}

func TestRenderInstallmentPlan(t *testing.T) {
	out := RenderInstallmentPlan(model.InstallmentPlan{
		Principal:         1000,
		Installments:      10,
		MonthlyRate:       0.02,
		InstallmentAmount: 111.33,
		TotalPaid:         1113.30,
		TotalInterest:     113.30,
	})

	assert.Contains(t, out, "10x of")
	assert.Contains(t, out, "R$ 111.33")
	assert.Contains(t, out, "2.00% per month")
	assert.Contains(t, out, "R$ 113.30")
}

func TestRenderInstallmentPlanInterestFree(t *testing.T) {
	out := RenderInstallmentPlan(model.InstallmentPlan{
		Principal:         1200,
		Installments:      12,
		InstallmentAmount: 100,
		TotalPaid:         1200,
	})
	assert.Contains(t, out, "interest free")
}

func TestRenderMonthlyReport(t *testing.T) {
	limit := model.UtilizationReport{Limit: 5000, UsedPct: 64, Tier: model.TierAlert}
	comparison := model.PeriodComparison{
		PriorTotal:   100,
		CurrentTotal: 150,
		Variation:    50,
		VariationPct: 50,
		Trend:        model.TrendIncrease,
	}
	out := RenderMonthlyReport(model.MonthlyReport{
		Analysis:    model.BatchAnalysis{Total: 150, Count: 2, AvgTicket: 75},
		Utilization: &limit,
		Comparison:  &comparison,
		Insights:    []string{"Top spending: 🍔 Food (65.1% of total)"},
	})

	assert.Contains(t, out, "Statement analysis")
	assert.Contains(t, out, "Limit usage")
	assert.Contains(t, out, "Versus prior period")
	assert.Contains(t, out, "+50.0%")
	assert.Contains(t, out, "Top spending")
}
