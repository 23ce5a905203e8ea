package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDurationInDays(t *testing.T) {
	day := func(value string) time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		require.NoError(t, err)
		return parsed
	}

	tests := []struct {
		name       string
		start, end time.Time
		includeEnd bool
		want       int
	}{
		{name: "same day exclusive", start: day("2026-03-10"), end: day("2026-03-10"), want: 0},
		{name: "same day inclusive", start: day("2026-03-10"), end: day("2026-03-10"), includeEnd: true, want: 1},
		{name: "weekend inclusive", start: day("2026-03-13"), end: day("2026-03-15"), includeEnd: true, want: 3},
		{name: "ignores time of day", start: day("2026-03-10").Add(23 * time.Hour), end: day("2026-03-11").Add(time.Minute), includeEnd: true, want: 2},
		{name: "across month boundary", start: day("2026-01-30"), end: day("2026-02-02"), includeEnd: true, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DurationInDays(tt.start, tt.end, tt.includeEnd))
		})
	}
}

func TestDurationInHours(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC).UnixMilli()

	require.InDelta(t, 1.5, DurationInHours(start, end), 0.001)
}

func TestFromUnixMillisRoundTrip(t *testing.T) {
	now := time.Now().Truncate(time.Millisecond)
	require.True(t, FromUnixMillis(now.UnixMilli()).Equal(now))
}
