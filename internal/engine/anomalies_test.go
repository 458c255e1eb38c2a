package engine

import (
	"testing"

	"github.com/fbarros/fatura/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectAnomalies_HighValue(t *testing.T) {
	a := New(DefaultConfig())

	tests := []struct {
		name      string
		txns      []model.Transaction
		wantCount int
	}{
		{
			name: "flags amount above 3x mean and floor",
			txns: []model.Transaction{
				{Description: "COMPRA A", Amount: 100},
				{Description: "COMPRA B", Amount: 100},
				{Description: "COMPRA C", Amount: 100},
				{Description: "TV SALA", Amount: 2000},
			},
			wantCount: 1,
		},
		{
			name: "above multiplier but below floor stays quiet",
			txns: []model.Transaction{
				{Description: "CAFE", Amount: 5},
				{Description: "CAFE B", Amount: 5},
				{Description: "CAFE C", Amount: 5},
				{Description: "JANTAR", Amount: 100},
			},
			wantCount: 0,
		},
		{
			name: "above floor but below multiplier stays quiet",
			txns: []model.Transaction{
				{Description: "COMPRA A", Amount: 600},
				{Description: "COMPRA B", Amount: 700},
			},
			wantCount: 0,
		},
		{
			name:      "empty batch",
			txns:      nil,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.DetectAnomalies(tt.txns)

			var highValue []model.AnomalyAlert
			for _, alert := range got.Alerts {
				if alert.Kind == model.AlertHighValue {
					highValue = append(highValue, alert)
				}
			}
			assert.Len(t, highValue, tt.wantCount)
		})
	}
}

func TestDetectAnomalies_HighValueRatio(t *testing.T) {
	a := New(DefaultConfig())

	got := a.DetectAnomalies([]model.Transaction{
		{Description: "COMPRA A", Amount: 100},
		{Description: "COMPRA B", Amount: 100},
		{Description: "COMPRA C", Amount: 100},
		{Description: "NOTEBOOK", Amount: 2200},
	})

	require.Len(t, got.Alerts, 1)
	alert := got.Alerts[0]
	assert.Equal(t, model.AlertHighValue, alert.Kind)
	assert.Equal(t, "NOTEBOOK", alert.Description)
	assert.InDelta(t, 3.52, alert.Ratio, 0.001) // 2200 / 625
}

func TestDetectAnomalies_IdenticalBatchYieldsOneDuplicate(t *testing.T) {
	a := New(DefaultConfig())

	const n = 4
	txns := make([]model.Transaction, n)
	for i := range txns {
		txns[i] = model.Transaction{Description: "X", Amount: 100}
	}

	got := a.DetectAnomalies(txns)

	// All amounts equal the mean, so the high-value test never fires.
	require.Equal(t, 1, got.Count)
	alert := got.Alerts[0]
	assert.Equal(t, model.AlertDuplicate, alert.Kind)
	assert.Equal(t, n, alert.Occurrences)
	assert.Equal(t, "x", alert.Description)
	assert.Equal(t, 100.0, alert.Amount)
}

func TestDetectAnomalies_DuplicateNeedsSameAmount(t *testing.T) {
	a := New(DefaultConfig())

	got := a.DetectAnomalies([]model.Transaction{
		{Description: "IFOOD", Amount: 45.90},
		{Description: "ifood", Amount: 45.90},
		{Description: "IFOOD", Amount: 30.00},
	})

	var duplicates []model.AnomalyAlert
	for _, alert := range got.Alerts {
		if alert.Kind == model.AlertDuplicate {
			duplicates = append(duplicates, alert)
		}
	}

	require.Len(t, duplicates, 1, "description match is case-insensitive, amount match is exact")
	assert.Equal(t, 2, duplicates[0].Occurrences)
	assert.Equal(t, 45.90, duplicates[0].Amount)
}

func TestDetectAnomalies_FinancialCharges(t *testing.T) {
	a := New(DefaultConfig())

	got := a.DetectAnomalies([]model.Transaction{
		{Description: "JUROS ROTATIVO", Amount: 52.30},
		{Description: "TARIFA ANUIDADE", Amount: 35.00},
		{Description: "COMPRA COMUM", Amount: 80.00},
	})

	var charges []model.AnomalyAlert
	for _, alert := range got.Alerts {
		if alert.Kind == model.AlertFinancialCharge {
			charges = append(charges, alert)
		}
	}

	require.Len(t, charges, 2)
	assert.Equal(t, "JUROS ROTATIVO", charges[0].Description)
	assert.Equal(t, "TARIFA ANUIDADE", charges[1].Description)
}

func TestDetectAnomalies_AlertOrdering(t *testing.T) {
	a := New(DefaultConfig())

	// One transaction fires the high-value and financial-charge tests at
	// once; the duplicate pair sits between them in the output.
	got := a.DetectAnomalies([]model.Transaction{
		{Description: "IOF COMPRA INTERNACIONAL", Amount: 900},
		{Description: "MERCADO", Amount: 20},
		{Description: "MERCADO", Amount: 20},
		{Description: "PADARIA", Amount: 15},
	})

	require.Equal(t, 3, got.Count)
	assert.Equal(t, model.AlertHighValue, got.Alerts[0].Kind)
	assert.Equal(t, model.AlertDuplicate, got.Alerts[1].Kind)
	assert.Equal(t, model.AlertFinancialCharge, got.Alerts[2].Kind)
	assert.Equal(t, got.Alerts[0].Description, got.Alerts[2].Description)
}

func TestDetectAnomalies_ConfigurableThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HighValueFloor = 50
	cfg.HighValueMultiplier = 2
	a := New(cfg)

	got := a.DetectAnomalies([]model.Transaction{
		{Description: "A", Amount: 10},
		{Description: "B", Amount: 10},
		{Description: "C", Amount: 70},
	})

	require.Equal(t, 1, got.Count)
	assert.Equal(t, model.AlertHighValue, got.Alerts[0].Kind)
	assert.Equal(t, "C", got.Alerts[0].Description)
}
