package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fbarros/fatura/internal/cli"
)

func periodsCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "periods",
		Short: "List saved period summaries",
		Long: `Display every period summary stored by 'fatura report --save',
oldest first. These summaries feed the month-over-month comparison.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			summaries, err := store.ListPeriodSummaries(ctx)
			if err != nil {
				return fmt.Errorf("listing period summaries: %w", err)
			}

			if jsonOut {
				return printJSON(summaries)
			}

			if len(summaries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No periods saved yet. Use 'fatura report --period YYYY-MM --save'."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Saved periods"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Period"),
				cli.BoldStyle.Render("Total"),
				cli.BoldStyle.Render("Transactions"),
				cli.BoldStyle.Render("Top category"))
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.Period, cli.Money(s.Total), s.Count, s.TopCategory)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the summaries as JSON")

	return cmd
}
