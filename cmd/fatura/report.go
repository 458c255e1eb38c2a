package main

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/fbarros/fatura/internal/cli"
	"github.com/fbarros/fatura/internal/common"
	"github.com/fbarros/fatura/internal/config"
	"github.com/fbarros/fatura/internal/engine"
	"github.com/fbarros/fatura/internal/model"
	"github.com/fbarros/fatura/internal/sheets"
)

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

func reportCmd() *cobra.Command {
	var (
		limit        float64
		period       string
		priorTotal   float64
		save         bool
		exportSheets bool
		jsonOut      bool
	)

	cmd := &cobra.Command{
		Use:   "report <statement-file>",
		Short: "Build the full monthly report for a statement",
		Long: `Run every analysis over a statement and compose a single report:
category breakdown, subscriptions, anomalies, optional limit
utilization, month-over-month comparison, and insights.

With --period, the prior period is looked up in the local database
when --prior-total is not given, and --save stores this period's
summary for future comparisons.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if period != "" && !periodPattern.MatchString(period) {
				return fmt.Errorf("%w: period must look like 2026-07, got %q", common.ErrInvalidInput, period)
			}
			if save && period == "" {
				return fmt.Errorf("%w: --save requires --period", common.ErrInvalidInput)
			}

			analyzer, err := newAnalyzer()
			if err != nil {
				return err
			}

			txns, err := loadTransactions(args[0])
			if err != nil {
				return err
			}

			opts := engine.ReportOptions{}
			if cmd.Flags().Changed("limit") {
				opts.Limit = &limit
			}
			if cmd.Flags().Changed("prior-total") {
				opts.Prior = &model.PeriodSummary{Total: priorTotal}
			}

			if opts.Prior == nil && period != "" {
				store, storeErr := initStorage(ctx)
				if storeErr != nil {
					return storeErr
				}
				defer func() { _ = store.Close() }()

				prior, lookupErr := store.LatestPeriodBefore(ctx, period)
				switch {
				case errors.Is(lookupErr, common.ErrNotFound):
					fmt.Println(cli.FormatWarning(fmt.Sprintf("No period before %s on record, skipping comparison", period)))
				case lookupErr != nil:
					return lookupErr
				default:
					opts.Prior = prior
				}
			}

			report, err := analyzer.BuildMonthlyReport(txns, opts)
			if err != nil {
				return err
			}

			if save {
				if err := savePeriod(cmd, report, period); err != nil {
					return err
				}
			}

			if exportSheets {
				if err := exportReport(cmd, report, period); err != nil {
					return err
				}
			}

			if jsonOut {
				return printJSON(report)
			}
			fmt.Print(cli.RenderMonthlyReport(report))
			return nil
		},
	}

	cmd.Flags().Float64Var(&limit, "limit", 0, "credit limit, enables the utilization section")
	cmd.Flags().StringVar(&period, "period", "", "statement period as YYYY-MM, enables database comparison")
	cmd.Flags().Float64Var(&priorTotal, "prior-total", 0, "prior period total, overrides the database lookup")
	cmd.Flags().BoolVar(&save, "save", false, "store this period's summary for future comparisons")
	cmd.Flags().BoolVar(&exportSheets, "export-sheets", false, "export the report to Google Sheets")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")

	return cmd
}

func savePeriod(cmd *cobra.Command, report model.MonthlyReport, period string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	summary := model.PeriodSummary{
		Period: period,
		Total:  report.Analysis.Total,
		Count:  report.Analysis.Count,
	}
	if len(report.Analysis.ByCategory) > 0 {
		summary.TopCategory = report.Analysis.ByCategory[0].Category.Slug
	}

	if err := store.SavePeriodSummary(ctx, summary); err != nil {
		return fmt.Errorf("saving period summary: %w", err)
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved summary for %s", period)))
	return nil
}

func exportReport(cmd *cobra.Command, report model.MonthlyReport, period string) error {
	ctx := cmd.Context()

	sheetsCfg, err := config.LoadSheetsConfig()
	if err != nil {
		return common.NewUserError(
			"Google Sheets export is not configured. Set FATURA_SHEETS_* credentials or the sheets section of the config file.", err)
	}

	writer, err := sheets.NewWriter(ctx, *sheetsCfg, slog.Default())
	if err != nil {
		return fmt.Errorf("creating sheets writer: %w", err)
	}

	if period == "" {
		period = "latest"
	}
	if err := writer.Export(ctx, report, period); err != nil {
		return fmt.Errorf("exporting report: %w", err)
	}
	fmt.Println(cli.FormatSuccess("Report exported to Google Sheets"))
	return nil
}
