package commands

import (
	"fmt"

	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/spf13/cobra"
)

func newSummaryCommand() *cobra.Command {
	var granularity string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print stored period summaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeDB, err := openServices(cmd.Context())
			if err != nil {
				return err
			}
			defer closeDB()

			report, err := svc.Summary.Aggregate(cmd.Context(), domain.ParseGranularity(granularity))
			if err != nil {
				return err
			}
			if report.Warning != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "Warning: "+report.Warning)
			}
			return printSummaries(cmd.OutOrStdout(), report.Periods)
		},
	}

	cmd.Flags().StringVarP(&granularity, "granularity", "g", string(domain.GranularityMonth), "day, week, month or year")

	return cmd
}
