package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/otabek/hr-console/internal/admin"
	"github.com/otabek/hr-console/internal/observability"
)

var qaCmd = &cobra.Command{
	Use:   "qa <session-id>",
	Short: "Show a session's interview Q&A",
	Long:  "Print every question of a session with its answer and any AI-integrity badges.",
	Args:  cobra.ExactArgs(1),
	RunE:  runQA,
}

func init() {
	rootCmd.AddCommand(qaCmd)
}

func runQA(_ *cobra.Command, args []string) error {
	dash := admin.NewDashboard(newClient(), consoleLocale())
	if err := dash.Load(context.Background()); err != nil {
		return err
	}

	entry, ok := dash.Find(args[0])
	if !ok {
		return fmt.Errorf("unknown session %s", args[0])
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTranscript(admin.Transcript(entry))
	return nil
}
