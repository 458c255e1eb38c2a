package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fbarros/fatura/internal/common"
	"github.com/fbarros/fatura/internal/model"
)

func TestReportValues(t *testing.T) {
	report := model.MonthlyReport{
		Analysis: model.BatchAnalysis{
			Total:     131.70,
			Count:     3,
			AvgTicket: 43.90,
			ByCategory: []model.CategorySummary{
				{Category: model.Category{Slug: "food", Label: "Food"}, Total: 91.80, Percent: 69.7},
				{Category: model.Category{Slug: "subscriptions", Label: "Subscriptions"}, Total: 39.90, Percent: 30.3},
			},
		},
		Subscriptions: model.SubscriptionReport{
			Known: []model.KnownSubscription{
				{Service: "Netflix", Amount: 39.90, Status: model.SubscriptionNormal},
			},
			TotalKnown: 39.90,
		},
		Anomalies: model.AnomalyReport{
			Alerts: []model.AnomalyAlert{
				{Kind: model.AlertDuplicate, Description: "ifood", Amount: 45.90, Occurrences: 2},
			},
			Count: 1,
		},
		Insights: []string{"Top spending: Food (69.7% of total)"},
	}

	values := reportValues(report, "2025-08")

	require.NotEmpty(t, values)
	assert.Equal(t, []any{"Fatura Report", "2025-08"}, values[0])

	flat := make(map[any]bool)
	for _, row := range values {
		for _, cell := range row {
			flat[cell] = true
		}
	}
	assert.True(t, flat["Food"])
	assert.True(t, flat["Netflix"])
	assert.True(t, flat["duplicate"])
	assert.True(t, flat["Top spending: Food (69.7% of total)"])
}

func TestReportValues_OptionalSections(t *testing.T) {
	report := model.MonthlyReport{
		Analysis: model.BatchAnalysis{Total: 100, Count: 1, AvgTicket: 100},
		Utilization: &model.UtilizationReport{
			UsedPct:   65.85,
			Tier:      model.TierAlert,
			Available: 68.30,
		},
		Comparison: &model.PeriodComparison{
			PriorTotal: 150,
			Variation:  -50,
			Trend:      model.TrendDecrease,
		},
	}

	values := reportValues(report, "2025-08")

	var sawUsage, sawPrior bool
	for _, row := range values {
		if len(row) > 0 && row[0] == "Limit usage" {
			sawUsage = true
			assert.Equal(t, "65.9%", row[1])
		}
		if len(row) > 0 && row[0] == "Prior period" {
			sawPrior = true
		}
	}
	assert.True(t, sawUsage)
	assert.True(t, sawPrior)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "oauth credentials",
			mutate: func(c *Config) { c.ClientID, c.ClientSecret, c.RefreshToken = "id", "secret", "token" },
		},
		{
			name:   "service account",
			mutate: func(c *Config) { c.ServiceAccountPath = "/tmp/key.json" },
		},
		{
			name:    "no auth",
			mutate:  func(c *Config) {},
			wantErr: common.ErrMissingConfig,
		},
		{
			name: "both auth methods",
			mutate: func(c *Config) {
				c.ClientID, c.ClientSecret, c.RefreshToken = "id", "secret", "token"
				c.ServiceAccountPath = "/tmp/key.json"
			},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name: "negative retry attempts",
			mutate: func(c *Config) {
				c.ServiceAccountPath = "/tmp/key.json"
				c.RetryAttempts = -1
			},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
