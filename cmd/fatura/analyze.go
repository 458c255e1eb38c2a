package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbarros/fatura/internal/cli"
	"github.com/fbarros/fatura/internal/tui"
)

func analyzeCmd() *cobra.Command {
	var (
		jsonOut     bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <statement-file>",
		Short: "Classify a statement and summarize spending by category",
		Long: `Read a statement file (.csv, .ofx or .qfx), classify every charge
into a spending category, and print totals per category.`,
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

			analysis := analyzer.AnalyzeBatch(txns)

			if jsonOut {
				return printJSON(analysis)
			}
			if interactive {
				return tui.Run(analysis)
			}

			fmt.Print(cli.RenderBatchAnalysis(analysis))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the analysis as JSON")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse classified transactions in a TUI")

	return cmd
}
