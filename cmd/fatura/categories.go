package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fbarros/fatura/internal/cli"
)

func categoriesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the classification taxonomy",
		Long: `Display the spending categories charges are classified into, with
the keywords each one matches. The taxonomy can be replaced through
the analysis.categories section of the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := newAnalyzer()
			if err != nil {
				return err
			}

			cfg := analyzer.Config()

			if jsonOut {
				return printJSON(cfg.Categories)
			}

			fmt.Println(cli.FormatTitle("Categories"))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Slug"),
				cli.BoldStyle.Render("Keywords"))
			for _, c := range cfg.Categories {
				fmt.Fprintf(w, "%s %s\t%s\t%s\n", c.Icon, c.Label, c.Slug, strings.Join(c.Keywords, ", "))
			}
			fmt.Fprintf(w, "%s %s\t%s\t%s\n", cfg.Fallback.Icon, cfg.Fallback.Label, cfg.Fallback.Slug,
				cli.SubtleStyle.Render("(everything else)"))

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the taxonomy as JSON")

	return cmd
}
