package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/fbarros/fatura/internal/common"
	"github.com/fbarros/fatura/internal/model"
)

// Writer exports monthly reports to a Google Sheets spreadsheet.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewWriter creates a new Google Sheets exporter.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	service, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: service,
		logger:  logger,
	}, nil
}

// Export writes one monthly report to the configured spreadsheet,
// replacing any previous contents.
func (w *Writer) Export(ctx context.Context, report model.MonthlyReport, period string) error {
	w.logger.Info("starting report export",
		"period", period,
		"transactions", report.Analysis.Count)

	spreadsheetID, err := w.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	values := reportValues(report, period)

	retryOpts := common.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err = common.WithRetry(ctx, func() error {
		return w.writeValues(ctx, spreadsheetID, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	w.logger.Info("report export completed",
		"spreadsheet_id", spreadsheetID,
		"rows_written", len(values))

	return nil
}

func (w *Writer) writeValues(ctx context.Context, spreadsheetID string, values [][]any) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, "A:Z", &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	_, err = w.service.Spreadsheets.Values.Update(spreadsheetID, "A1", &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update values: %w", err)
	}
	return nil
}

// getOrCreateSpreadsheet verifies the configured spreadsheet or creates a
// new one.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if w.config.SpreadsheetID != "" {
		_, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("unable to access spreadsheet %s: %w", w.config.SpreadsheetID, err)
		}
		return w.config.SpreadsheetID, nil
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:    w.config.SpreadsheetName,
			TimeZone: w.config.TimeZone,
		},
	}

	created, err := w.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	w.logger.Info("created new spreadsheet",
		"id", created.SpreadsheetId,
		"url", created.SpreadsheetUrl)

	return created.SpreadsheetId, nil
}

// createSheetsService creates a Google Sheets API service from either a
// service account key or OAuth2 refresh-token credentials.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		oauthConfig := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = oauthConfig.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}

// reportValues flattens a monthly report into spreadsheet rows.
func reportValues(report model.MonthlyReport, period string) [][]any {
	values := [][]any{
		{"Fatura Report", period},
		{},
		{"Total", report.Analysis.Total},
		{"Transactions", report.Analysis.Count},
		{"Average ticket", report.Analysis.AvgTicket},
		{},
		{"Category", "Total", "Percent"},
	}

	for _, c := range report.Analysis.ByCategory {
		values = append(values, []any{c.Category.Label, c.Total, fmt.Sprintf("%.1f%%", c.Percent)})
	}

	if len(report.Subscriptions.Known) > 0 {
		values = append(values, []any{}, []any{"Subscription", "Amount", "Status"})
		for _, s := range report.Subscriptions.Known {
			values = append(values, []any{s.Service, s.Amount, string(s.Status)})
		}
		values = append(values, []any{"Total subscriptions", report.Subscriptions.TotalKnown})
	}

	if report.Anomalies.Count > 0 {
		values = append(values, []any{}, []any{"Alert", "Description", "Amount"})
		for _, a := range report.Anomalies.Alerts {
			values = append(values, []any{string(a.Kind), a.Description, a.Amount})
		}
	}

	if report.Utilization != nil {
		u := report.Utilization
		values = append(values, []any{},
			[]any{"Limit usage", fmt.Sprintf("%.1f%%", u.UsedPct), string(u.Tier)},
			[]any{"Available", u.Available})
	}

	if report.Comparison != nil {
		c := report.Comparison
		values = append(values, []any{},
			[]any{"Prior period", c.PriorTotal},
			[]any{"Variation", c.Variation, string(c.Trend)})
	}

	if len(report.Insights) > 0 {
		values = append(values, []any{}, []any{"Insights"})
		for _, insight := range report.Insights {
			values = append(values, []any{insight})
		}
	}

	return values
}
