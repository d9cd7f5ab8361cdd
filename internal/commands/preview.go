package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/SscSPs/statement_analytics/internal/core/analytics"
	"github.com/SscSPs/statement_analytics/internal/core/domain"
	"github.com/SscSPs/statement_analytics/internal/core/ingest"
	"github.com/SscSPs/statement_analytics/internal/utils/mapping"
	"github.com/spf13/cobra"
)

func newPreviewCommand() *cobra.Command {
	var granularity, flow, search string

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Parse a statement and print its period summaries without touching the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			filter := domain.TransactionFilter{Flow: domain.ParseFlowType(flow), Search: search}
			return runPreview(cmd.OutOrStdout(), data, domain.ParseGranularity(granularity), filter)
		},
	}

	cmd.Flags().StringVarP(&granularity, "granularity", "g", string(domain.GranularityMonth), "day, week, month or year")
	cmd.Flags().StringVar(&flow, "flow", string(domain.FlowAll), "all, in or out")
	cmd.Flags().StringVar(&search, "search", "", "only summarize transactions whose text contains this")

	return cmd
}

func runPreview(out io.Writer, data []byte, g domain.Granularity, filter domain.TransactionFilter) error {
	parsed, err := ingest.ParseFile(data)
	if err != nil {
		return err
	}

	txns := make([]domain.Transaction, 0, len(parsed.Drafts))
	for i, d := range parsed.Drafts {
		t := mapping.ToDomainTransaction(mapping.DraftToModelTransaction(d))
		t.ID = int64(i + 1)
		if filter.Matches(t) {
			txns = append(txns, t)
		}
	}

	fmt.Fprintf(out, "Encoding: %s, rows: %d, parsed: %d, discarded: %d\n\n",
		parsed.Encoding, parsed.Rows(), len(parsed.Drafts), parsed.Discarded)
	return printSummaries(out, analytics.Summarize(analytics.Rollup(txns, g)))
}

func printSummaries(out io.Writer, summaries []domain.PeriodSummary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Period\tIn\tOut\tBalance\tCount\tAvg in\tAvg out\t")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t\n",
			s.Label,
			s.TotalIn.StringFixed(2),
			s.TotalOut.StringFixed(2),
			s.Balance.StringFixed(2),
			s.TransactionCount,
			s.AvgIn.StringFixed(2),
			s.AvgOut.StringFixed(2),
		)
	}
	return w.Flush()
}
