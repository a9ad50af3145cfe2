package cli

import (
	"dispatch_service/internal/adapter/http/routes"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the suggestion sweeper",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return routes.Run(cfg)
	},
}
