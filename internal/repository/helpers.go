package repository

import (
	"time"
)

// timeLayout is a fixed-width RFC3339 variant so that stored timestamps sort
// lexically in time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		// Rows written by hand or by older builds use plain RFC3339.
		return time.Parse(time.RFC3339Nano, s)
	}
	return t, nil
}
