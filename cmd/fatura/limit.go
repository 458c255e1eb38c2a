package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbarros/fatura/internal/cli"
)

func limitCmd() *cobra.Command {
	var (
		limit     float64
		balance   float64
		committed float64
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "limit",
		Short: "Check credit-limit utilization",
		Long: `Compute how much of the credit limit the current balance uses, how
much future installments already commit, and how healthy that looks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := newAnalyzer()
			if err != nil {
				return err
			}

			report, err := analyzer.AnalyzeUtilization(limit, balance, committed)
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(report)
			}
			fmt.Print(cli.RenderUtilization(report))
			return nil
		},
	}

	cmd.Flags().Float64Var(&limit, "limit", 0, "total credit limit (required)")
	cmd.Flags().Float64Var(&balance, "balance", 0, "current statement balance")
	cmd.Flags().Float64Var(&committed, "committed", 0, "future installments already committed")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")
	_ = cmd.MarkFlagRequired("limit")

	return cmd
}
