package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/otabek/hr-console/internal/admin"
	"github.com/otabek/hr-console/internal/i18n"
	"github.com/otabek/hr-console/internal/observability"
)

var reportCmd = &cobra.Command{
	Use:   "report <session-id>",
	Short: "Show a session's AI report",
	Long:  "Print the AI hiring report for a session, triggering integrity analysis and recommendation generation first when the backend has not computed them yet.",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, args []string) error {
	locale := consoleLocale()
	t := i18n.Admin(locale)
	dash := admin.NewDashboard(newClient(), locale)

	ctx := context.Background()
	if err := dash.Load(ctx); err != nil {
		return err
	}

	if entry, ok := dash.Find(args[0]); ok && admin.NeedsGeneration(entry) {
		fmt.Println(t.AILoading)
	}

	report, err := dash.Report(ctx, args[0])
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReport(i18n.Report(locale), report)
	return nil
}
