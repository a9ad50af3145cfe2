package cli

import (
	"fmt"
	"text/tabwriter"

	"dispatch_service/internal/adapter/persistence/jobfile"
	"dispatch_service/internal/adapter/persistence/repository"
	"dispatch_service/internal/config"
	"dispatch_service/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage the job catalog",
}

var jobsValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a job YAML file without writing it",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsValidate,
}

var jobsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Write jobs from a YAML file to the DynamoDB catalog",
	Long: `Write jobs from a YAML file to the DynamoDB catalog. Existing jobs with
the same business and id are replaced.

Examples:
  dispatchctl jobs import ./jobs.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runJobsImport,
}

func init() {
	jobsCmd.AddCommand(jobsValidateCmd)
	jobsCmd.AddCommand(jobsImportCmd)
}

func runJobsValidate(cmd *cobra.Command, args []string) error {
	jobs, err := jobfile.Load(args[0])
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BUSINESS\tID\tVERTICAL\tHOURS\tLOCATED")
	for _, j := range jobs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%t\n", j.BusinessID, j.ID, j.Vertical, j.Hours(), j.Location != nil)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d jobs ok\n", len(jobs))
	return nil
}

func runJobsImport(cmd *cobra.Command, args []string) error {
	if cfg.StorageDriver != config.StorageDynamoDB {
		return errNeedsDynamoDB
	}
	jobs, err := jobfile.Load(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	ddb, _, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	catalog := repository.NewJobCatalogDynamoRepository(ddb, cfg.JobsTable)
	for _, j := range jobs {
		if err := catalog.Put(ctx, j); err != nil {
			return fmt.Errorf("put job %s: %w", j.ID, err)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d jobs into %s\n", len(jobs), cfg.JobsTable)
	return nil
}
