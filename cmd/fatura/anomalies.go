package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbarros/fatura/internal/cli"
)

func anomaliesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "anomalies <statement-file>",
		Short: "Flag suspicious charges in a statement",
		Long: `Scan a statement for charges worth a second look: unusually large
amounts, duplicated charges, and interest or fee lines.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := newAnalyzer()
			if err != nil {
				return err
			}

			txns, err := loadTransactions(args[0])
			if err != nil {
				return err
			}

			report := analyzer.DetectAnomalies(txns)

			if jsonOut {
				return printJSON(report)
			}
			fmt.Print(cli.RenderAnomalyReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")

	return cmd
}
