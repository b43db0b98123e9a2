package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/otabek/hr-console/internal/admin"
	"github.com/otabek/hr-console/internal/i18n"
	"github.com/otabek/hr-console/internal/observability"
	"github.com/otabek/hr-console/internal/types"
)

var statusCmd = &cobra.Command{
	Use:   "status <session-id> <invite|reject>",
	Short: "Invite or reject a candidate",
	Long:  "Set a session's internal and public status to INVITED or REJECTED and reload the roster.",
	Args:  cobra.ExactArgs(2),
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, args []string) error {
	sessionID := args[0]

	var status string
	switch args[1] {
	case "invite":
		status = types.StatusInvited
	case "reject":
		status = types.StatusRejected
	default:
		return fmt.Errorf("unknown action %q (want invite or reject)", args[1])
	}

	locale := consoleLocale()
	t := i18n.Admin(locale)
	dash := admin.NewDashboard(newClient(), locale)

	ctx := context.Background()
	if err := dash.Load(ctx); err != nil {
		return err
	}
	if err := dash.UpdateStatus(ctx, sessionID, status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	fmt.Println(t.UpdateSuccess)
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintRoster(t, dash.Rows())
	return nil
}
