package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/puravida/internal/cli/formatter"
	"github.com/alexanderramin/puravida/internal/domain"
)

func newCallsCmd(app *App) *cobra.Command {
	var (
		limit   int
		session string
		prune   int
	)

	cmd := &cobra.Command{
		Use:   "calls",
		Short: "Show recent provider calls from the call log",
		Example: `  puravida calls
  puravida calls --limit 50
  puravida calls --prune 200`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if app.Calls == nil {
				return fmt.Errorf("call log is not available")
			}

			if cmd.Flags().Changed("prune") {
				if prune < 0 {
					return fmt.Errorf("--prune must be zero or more")
				}
				n, err := app.Calls.Prune(ctx, prune)
				if err != nil {
					return fmt.Errorf("pruning call log: %w", err)
				}
				fmt.Fprintf(app.out(), "Pruned %d calls, kept the newest %d.\n", n, prune)
				return nil
			}

			var (
				calls []*domain.ProviderCall
				err   error
			)
			if session != "" {
				calls, err = app.Calls.ListBySession(ctx, session)
			} else {
				calls, err = app.Calls.ListRecent(ctx, limit)
			}
			if err != nil {
				return fmt.Errorf("listing calls: %w", err)
			}

			stats, err := app.Calls.Stats(ctx)
			if err != nil {
				return fmt.Errorf("summarizing calls: %w", err)
			}

			summary := formatter.CallSummary{Total: stats.Total, Failed: stats.Failed, AvgLatencyMs: stats.AvgLatencyMs}
			fmt.Fprint(app.out(), formatter.FormatCalls(calls, summary, time.Now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of calls to show")
	cmd.Flags().StringVar(&session, "session", "", "show only calls from this session ID")
	cmd.Flags().IntVar(&prune, "prune", 0, "delete all but the newest N calls")
	return cmd
}
