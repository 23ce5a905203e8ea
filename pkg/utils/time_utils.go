package utils

import "time"

// DurationInDays counts whole calendar days between start and end, both
// truncated to midnight in their own location. includeEnd adds one so a
// Monday-to-Wednesday trip counts as three days, matching how travellers
// talk about trip length.
func DurationInDays(start, end time.Time, includeEnd bool) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}

	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	days := int(endDay.Sub(startDay).Hours() / 24)
	if includeEnd {
		return days + 1
	}
	return days
}

// DurationInHours is the fractional hour span between two unix-millisecond
// timestamps. Returns 0 when either bound is missing.
func DurationInHours(startMillis, endMillis int64) float64 {
	if startMillis <= 0 || endMillis <= 0 || endMillis < startMillis {
		return 0
	}
	return float64(endMillis-startMillis) / float64(time.Hour.Milliseconds())
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
func NowUnixMillis() int64  { return time.Now().UnixMilli() }

// FromUnixMillis converts an epoch value in milliseconds to time.Time,
// returning the zero time for t<=0 so callers decide how to render it.
func FromUnixMillis(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(t)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
