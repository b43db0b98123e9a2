package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/otabek/hr-console/internal/admin"
	"github.com/otabek/hr-console/internal/i18n"
	"github.com/otabek/hr-console/internal/observability"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List candidate sessions",
	Long:  "Fetch the candidate roster from the backend and print it with status, score and CV link per session.",
	RunE:  runRoster,
}

func init() {
	rootCmd.AddCommand(rosterCmd)
}

func runRoster(_ *cobra.Command, _ []string) error {
	locale := consoleLocale()
	dash := admin.NewDashboard(newClient(), locale)
	if err := dash.Load(context.Background()); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRoster(i18n.Admin(locale), dash.Rows())
	return nil
}
