package engine

import (
	"fmt"

	"github.com/fbarros/fatura/internal/model"
)

// ReportOptions carries the optional inputs of a monthly report.
type ReportOptions struct {
	// Limit enables the utilization section when set.
	Limit *float64
	// Prior enables the month-over-month comparison when set. Only the
	// prior total is required.
	Prior *model.PeriodSummary
}

// BuildMonthlyReport composes one classification, subscription, and anomaly
// pass over the batch, plus the optional utilization and comparison
// sections, and derives the insight list. The only failure mode is a
// supplied non-positive limit.
func (a *Analyzer) BuildMonthlyReport(txns []model.Transaction, opts ReportOptions) (model.MonthlyReport, error) {
	report := model.MonthlyReport{
		Analysis:      a.AnalyzeBatch(txns),
		Subscriptions: a.DetectSubscriptions(txns),
		Anomalies:     a.DetectAnomalies(txns),
	}

	if opts.Limit != nil {
		utilization, err := a.AnalyzeUtilization(*opts.Limit, report.Analysis.Total, 0)
		if err != nil {
			return model.MonthlyReport{}, err
		}
		report.Utilization = &utilization
	}

	if opts.Prior != nil {
		report.Comparison = comparePeriods(report.Analysis.Total, opts.Prior.Total)
	}

	report.Insights = a.insights(report, opts.Limit)
	return report, nil
}

func comparePeriods(current, prior float64) *model.PeriodComparison {
	variation := current - prior
	pct := 0.0
	if prior > 0 {
		pct = variation / prior * 100
	}

	trend := model.TrendStable
	switch {
	case variation > 0:
		trend = model.TrendIncrease
	case variation < 0:
		trend = model.TrendDecrease
	}

	return &model.PeriodComparison{
		PriorTotal:   prior,
		CurrentTotal: current,
		Variation:    round2(variation),
		VariationPct: pct,
		Trend:        trend,
	}
}

// insights derives the report's headline facts: top category, known
// subscription spend, alert count, and heavy limit usage.
func (a *Analyzer) insights(report model.MonthlyReport, limit *float64) []string {
	var insights []string

	if len(report.Analysis.ByCategory) > 0 {
		top := report.Analysis.ByCategory[0]
		insights = append(insights, fmt.Sprintf("Top spending: %s %s (%.1f%% of total)",
			top.Category.Icon, top.Category.Label, top.Percent))
	}

	if report.Subscriptions.TotalKnown > 0 {
		insights = append(insights, fmt.Sprintf("Known subscriptions add up to %.2f/month",
			report.Subscriptions.TotalKnown))
	}

	if report.Anomalies.Count > 0 {
		insights = append(insights, fmt.Sprintf("%d alert(s) need your attention", report.Anomalies.Count))
	}

	if limit != nil && *limit > 0 && report.Analysis.Total / *limit > 0.5 {
		insights = append(insights, "Limit usage above 50% - consider cutting back")
	}

	return insights
}
