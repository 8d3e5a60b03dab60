package store

import (
	"fmt"
	"time"
)

// timestampLayout is fixed width so that text ordering of stored values
// equals time ordering.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampLayout, s)
	if err != nil {
		// rows written by older schemas or by hand may use RFC 3339
		if t, err = time.Parse(time.RFC3339Nano, s); err != nil {
			return time.Time{}, fmt.Errorf("invalid stored timestamp %q: %w", s, err)
		}
	}
	return t.UTC(), nil
}

// advance returns a wall-clock timestamp strictly after prev, even when the
// clock has moved backwards.
func advance(now, prev time.Time) time.Time {
	now = now.UTC()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond).UTC()
	}
	return now
}
