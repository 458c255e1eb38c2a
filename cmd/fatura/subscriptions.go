package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fbarros/fatura/internal/cli"
)

func subscriptionsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "subscriptions <statement-file>",
		Short: "Detect subscription services and recurring charges",
		Long: `Match statement charges against known subscription services, flag
amounts outside each service's typical range, and surface other
descriptions that repeat like a recurring charge.`,
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

			report := analyzer.DetectSubscriptions(txns)

			if jsonOut {
				return printJSON(report)
			}
			fmt.Print(cli.RenderSubscriptionReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")

	return cmd
}
