package cli

import (
	"errors"
	"fmt"

	"dispatch_service/internal/adapter/http/middleware"

	"github.com/spf13/cobra"
)

var (
	tokenBusiness string
	tokenSubject  string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign a bearer token for a business with JWT_SECRET",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET is not set")
		}
		token, err := middleware.SignToken(cfg.JWTSecret, tokenBusiness, tokenSubject)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenBusiness, "business", "", "business id (required)")
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "dispatchctl", "actor recorded on writes")
	_ = tokenCmd.MarkFlagRequired("business")
}
