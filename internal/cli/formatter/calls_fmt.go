package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/puravida/internal/domain"
)

// CallSummary aggregates the call log for the footer line.
type CallSummary struct {
	Total        int
	Failed       int
	AvgLatencyMs int64
}

// FormatCalls renders recent provider calls as a table with a summary line.
func FormatCalls(calls []*domain.ProviderCall, summary CallSummary, now time.Time) string {
	if len(calls) == 0 {
		return Dim("No provider calls recorded yet.") + "\n"
	}

	headers := []string{"ID", "WHEN", "TASK", "PROVIDER", "MODEL", "LATENCY", "STATUS"}
	rows := make([][]string, len(calls))
	for i, c := range calls {
		status := CallIndicator(c.Success, c.ErrorClass)
		if !c.Success && c.ErrorCode != "" {
			status += " " + Dim(c.ErrorCode)
		}
		rows[i] = []string{
			TruncID(c.ID),
			RelativeTimeFrom(c.CreatedAt, now),
			c.Task,
			c.Provider,
			c.Model,
			FormatLatency(c.LatencyMs),
			status,
		}
	}

	var b strings.Builder
	b.WriteString(RenderTableAligned(headers, rows, []int{5}))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %d calls, %d failed, avg %s\n",
		Dim("Total:"), summary.Total, summary.Failed, FormatLatency(summary.AvgLatencyMs))
	return b.String()
}
