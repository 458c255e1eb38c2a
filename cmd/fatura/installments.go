package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbarros/fatura/internal/cli"
)

func installmentsCmd() *cobra.Command {
	var (
		principal    float64
		installments int
		rate         float64
		jsonOut      bool
	)

	cmd := &cobra.Command{
		Use:   "installments",
		Short: "Simulate paying a purchase in installments",
		Long: `Simulate splitting a purchase into monthly installments, with or
without interest. The rate is the monthly interest as a fraction,
so 0.02 means 2% per month.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := newAnalyzer()
			if err != nil {
				return err
			}

			plan, err := analyzer.SimulateInstallments(principal, installments, rate)
			if err != nil {
				return err
			}

			if jsonOut {
				return printJSON(plan)
			}
			fmt.Print(cli.RenderInstallmentPlan(plan))
			return nil
		},
	}

	cmd.Flags().Float64Var(&principal, "principal", 0, "purchase amount (required)")
	cmd.Flags().IntVarP(&installments, "installments", "n", 0, "number of monthly installments (required)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "monthly interest rate as a fraction (0.02 = 2%)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the plan as JSON")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("installments")

	return cmd
}
