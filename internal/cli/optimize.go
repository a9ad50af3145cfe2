package cli

import (
	"fmt"
	"text/tabwriter"

	"dispatch_service/internal/app"
	"dispatch_service/internal/domain/entities"

	"github.com/spf13/cobra"
)

var (
	optimizeBusiness string
	optimizeTech     string
	optimizeDate     string
	optimizeApply    bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize the visiting order of a technician day",
	Long: `Optimize the visiting order of a technician day and print the plan.
Nothing is written unless --apply is set.

Examples:
  dispatchctl optimize --business biz-1 --tech t-42 --date 2025-03-03
  dispatchctl optimize --business biz-1 --tech t-42 --date 2025-03-03 --apply`,
	Args: cobra.NoArgs,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVar(&optimizeBusiness, "business", "", "business id (required)")
	optimizeCmd.Flags().StringVar(&optimizeTech, "tech", "", "technician id (required)")
	optimizeCmd.Flags().StringVar(&optimizeDate, "date", "", "day as YYYY-MM-DD (required)")
	optimizeCmd.Flags().BoolVar(&optimizeApply, "apply", false, "persist the optimized order")
	_ = optimizeCmd.MarkFlagRequired("business")
	_ = optimizeCmd.MarkFlagRequired("tech")
	_ = optimizeCmd.MarkFlagRequired("date")
}

func runOptimize(cmd *cobra.Command, args []string) error {
	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	plan, err := a.Routes.Optimize(cmd.Context(), optimizeBusiness, optimizeTech, optimizeDate, optimizeApply)
	if err != nil {
		return err
	}
	return printPlan(cmd, plan)
}

func printPlan(cmd *cobra.Command, plan entities.RoutePlan) error {
	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tWAS\tJOB\tLEG MIN\tARRIVAL\tLATE")
	for _, s := range plan.Stops {
		fmt.Fprintf(w, "%d\t%d\t%s\t%.1f\t%s\t%d\n", s.Order, s.OriginalOrder, s.JobID, s.LegMinutes, s.EstimatedArrival, s.LateMinutes)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "drive minutes: %.1f -> %.1f (saved %.1f)\n",
		plan.OriginalTotalMinutes, plan.OptimizedTotalMinutes, plan.TimeSavedMinutes)
	if plan.Degraded {
		fmt.Fprintln(out, "routing unavailable: original order kept")
	}
	if plan.Applied {
		fmt.Fprintln(out, "applied")
	}
	return nil
}
