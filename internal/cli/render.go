package cli

import (
	"fmt"
	"strings"

	"github.com/fbarros/fatura/internal/model"
)

// Money formats an amount the way Brazilian statements print it.
func Money(v float64) string {
	return fmt.Sprintf("R$ %.2f", v)
}

// RenderBatchAnalysis renders a classified statement summary.
func RenderBatchAnalysis(a model.BatchAnalysis) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(ChartIcon+" Statement analysis") + "\n")
	b.WriteString(fmt.Sprintf("Total: %s  Transactions: %d  Average ticket: %s\n\n",
		BoldStyle.Render(Money(a.Total)), a.Count, Money(a.AvgTicket)))

	for _, c := range a.ByCategory {
		b.WriteString(fmt.Sprintf("%s %-20s %12s  %5.1f%%  ×%d\n",
			c.Category.Icon, c.Category.Label, Money(c.Total), c.Percent, c.Count))
	}

	if len(a.Classified) > 0 {
		b.WriteString("\n" + SubtleStyle.Render(fmt.Sprintf("Showing %d of %d transactions", len(a.Classified), a.Count)) + "\n")
		for _, c := range a.Classified {
			confidence := ""
			if c.Confidence == model.ConfidenceLow {
				confidence = SubtleStyle.Render(" (unrecognized)")
			}
			b.WriteString(fmt.Sprintf("  %s %-30s %12s  %s%s\n",
				c.Category.Icon, clip(c.Transaction.Description, 30), Money(c.Transaction.Amount),
				c.Category.Label, confidence))
		}
	}

	return b.String()
}

// RenderSubscriptionReport renders known subscriptions and recurrence
// candidates.
func RenderSubscriptionReport(r model.SubscriptionReport) string {
	var b strings.Builder

	b.WriteString(FormatTitle("Subscriptions") + "\n")

	if len(r.Known) == 0 {
		b.WriteString(SubtleStyle.Render("No known subscription services found.") + "\n")
	}
	for _, s := range r.Known {
		status := SuccessStyle.Render("normal")
		if s.Status == model.SubscriptionAtypical {
			status = WarningStyle.Render(fmt.Sprintf("atypical (expected %s - %s)",
				Money(s.TypicalLow), Money(s.TypicalMax)))
		}
		b.WriteString(fmt.Sprintf("  %-25s %12s  %s\n", s.Service, Money(s.Amount), status))
	}
	if r.TotalKnown > 0 {
		b.WriteString(fmt.Sprintf("Total known subscriptions: %s/month\n", BoldStyle.Render(Money(r.TotalKnown))))
	}

	if len(r.Candidates) > 0 {
		b.WriteString("\nPossible recurring charges:\n")
		for _, c := range r.Candidates {
			marker := " "
			if c.PossibleSubscription {
				marker = WarningIcon
			}
			b.WriteString(fmt.Sprintf("  %s %-30s ×%d\n", marker, clip(c.Key, 30), c.Occurrences))
		}
	}

	return b.String()
}

// RenderAnomalyReport renders anomaly alerts grouped by kind markers.
func RenderAnomalyReport(r model.AnomalyReport) string {
	var b strings.Builder

	b.WriteString(FormatTitle("Anomalies") + "\n")
	if r.Count == 0 {
		b.WriteString(FormatSuccess("No anomalies found.") + "\n")
		return b.String()
	}

	for _, alert := range r.Alerts {
		switch alert.Kind {
		case model.AlertHighValue:
			b.WriteString(fmt.Sprintf("  %s %s %s (%.1fx the statement mean)\n",
				ErrorStyle.Render("high value"), clip(alert.Description, 30), Money(alert.Amount), alert.Ratio))
		case model.AlertDuplicate:
			b.WriteString(fmt.Sprintf("  %s %s %s ×%d\n",
				WarningStyle.Render("duplicate"), clip(alert.Description, 30), Money(alert.Amount), alert.Occurrences))
		case model.AlertFinancialCharge:
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				SubtleStyle.Render("fee/interest"), clip(alert.Description, 30), Money(alert.Amount)))
		}
	}
	b.WriteString(fmt.Sprintf("%d alert(s). Contact the issuer if any charge looks wrong.\n", r.Count))

	return b.String()
}

// RenderUtilization renders the credit-limit health report.
func RenderUtilization(u model.UtilizationReport) string {
	tier := map[model.UtilizationTier]string{
		model.TierHealthy:   SuccessStyle.Render("healthy"),
		model.TierAttention: WarningStyle.Render("attention"),
		model.TierAlert:     WarningStyle.Render("alert"),
		model.TierCritical:  ErrorStyle.Render("critical"),
	}[u.Tier]

	return fmt.Sprintf("%s\nLimit: %s  Balance: %s  Committed: %s\nUsed: %.1f%% (%s)  With installments: %.1f%%\nAvailable: %s\n",
		FormatTitle("Limit usage"),
		Money(u.Limit), Money(u.Balance), Money(u.Committed),
		u.UsedPct, tier, u.CommittedPct,
		Money(u.Available))
}

// RenderInstallmentPlan renders an installment simulation.
func RenderInstallmentPlan(p model.InstallmentPlan) string {
	rate := "interest free"
	if p.MonthlyRate > 0 {
		rate = fmt.Sprintf("%.2f%% per month", p.MonthlyRate*100)
	}

	return fmt.Sprintf("%s\n%dx of %s (%s)\nTotal paid: %s  Interest: %s\n",
		FormatTitle("Installment simulation"),
		p.Installments, BoldStyle.Render(Money(p.InstallmentAmount)), rate,
		Money(p.TotalPaid), Money(p.TotalInterest))
}

// RenderMonthlyReport renders the full aggregate report.
func RenderMonthlyReport(r model.MonthlyReport) string {
	sections := []string{
		RenderBatchAnalysis(r.Analysis),
		RenderSubscriptionReport(r.Subscriptions),
		RenderAnomalyReport(r.Anomalies),
	}

	if r.Utilization != nil {
		sections = append(sections, RenderUtilization(*r.Utilization))
	}

	if r.Comparison != nil {
		arrow := map[model.Trend]string{
			model.TrendIncrease: "📈 up",
			model.TrendDecrease: "📉 down",
			model.TrendStable:   "➡️ stable",
		}[r.Comparison.Trend]
		sections = append(sections, fmt.Sprintf("%s\nPrior: %s  Current: %s  Variation: %s (%+.1f%%) %s\n",
			FormatTitle("Versus prior period"),
			Money(r.Comparison.PriorTotal), Money(r.Comparison.CurrentTotal),
			Money(r.Comparison.Variation), r.Comparison.VariationPct, arrow))
	}

	if len(r.Insights) > 0 {
		var b strings.Builder
		for _, insight := range r.Insights {
			b.WriteString("  • " + insight + "\n")
		}
		sections = append(sections, RenderBox("Insights", strings.TrimRight(b.String(), "\n")))
	}

	return strings.Join(sections, "\n")
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
