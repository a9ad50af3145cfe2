package cli

import (
	"fmt"

	"dispatch_service/internal/app"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Expire pending suggestions older than SUGGESTION_TTL",
	Long: `Expire one batch of pending suggestions older than SUGGESTION_TTL.
Useful as a cron job when the API runs with the sweeper disabled.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		n, err := a.Sweeper.SweepOnce(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "expired %d suggestions\n", n)
		return nil
	},
}
