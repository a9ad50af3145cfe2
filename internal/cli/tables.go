package cli

import (
	"errors"
	"fmt"

	"dispatch_service/internal/config"
	"dispatch_service/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

var errNeedsDynamoDB = errors.New("command requires STORAGE_DRIVER=dynamodb")

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage DynamoDB tables",
}

var tablesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create missing tables and indexes",
	Long: `Create the technician, schedule, suggestion, location history and job
tables with their secondary indexes. Existing tables are left untouched.

Examples:
  DYNAMODB_ENDPOINT=http://localhost:8000 dispatchctl tables create`,
	Args: cobra.NoArgs,
	RunE: runTablesCreate,
}

func init() {
	tablesCmd.AddCommand(tablesCreateCmd)
}

func runTablesCreate(cmd *cobra.Command, args []string) error {
	if cfg.StorageDriver != config.StorageDynamoDB {
		return errNeedsDynamoDB
	}
	ctx := cmd.Context()
	ddb, _, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	if err := database.EnsureTables(ctx, ddb, cfg); err != nil {
		return err
	}
	for _, spec := range database.TableSpecs(cfg) {
		fmt.Fprintf(cmd.OutOrStdout(), "ready: %s\n", *spec.TableName)
	}
	return nil
}
