package repository

import (
	"fmt"
	"time"
)

// timestampLayout is fixed-width with nanoseconds so stored timestamps sort
// lexically in time order, even within one second.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, err)
	}
	return t, nil
}

// successFlag maps a call outcome onto the 0/1 success column.
func successFlag(ok bool) int {
	if ok {
		return 1
	}
	return 0
}
