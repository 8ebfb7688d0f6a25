package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) *time.Time {
	t := time.Date(2024, 6, 15, hour, min, 0, 0, time.UTC)
	return &t
}

func TestCountByStatusSumsToTotal(t *testing.T) {
	sessions := []Session{
		{Status: "working"},
		{Status: "working"},
		{Status: "break"},
		{Status: "completed"},
		{Status: "idle"},
	}
	counts := CountByStatus(sessions)
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(sessions), total)
	assert.Equal(t, 2, counts["working"])
}

func TestRateEmptyCohortIsZeroNotPanic(t *testing.T) {
	assert.Equal(t, 0, Rate(0, 0))
}

func TestRateRoundsToNearestPercent(t *testing.T) {
	assert.Equal(t, 67, Rate(2, 3))
	assert.Equal(t, 33, Rate(1, 3))
	assert.Equal(t, 100, Rate(5, 5))
}

func TestTrendMayBeNegative(t *testing.T) {
	assert.Equal(t, -15, Trend(60, 75))
	assert.Equal(t, 10, Trend(80, 70))
}

func TestAverageMinutesSkipsIncompleteSessions(t *testing.T) {
	sessions := []Session{
		{Login: at(9, 0), Logout: at(17, 0)},  // 8:00
		{Login: at(9, 30), Logout: at(18, 0)}, // 8:30
		{Login: at(10, 0)},                    // still working, excluded
	}
	avg := AverageMinutes(sessions)
	assert.Equal(t, "8:15", FormatMinutes(avg))
}

func TestAverageMinutesNoCompleteSessions(t *testing.T) {
	sessions := []Session{{Login: at(9, 0)}, {}}
	assert.Equal(t, float64(0), AverageMinutes(sessions))
	assert.Equal(t, "0:00", FormatMinutes(AverageMinutes(sessions)))
}

func TestFormatMinutesPadsMinutesOnly(t *testing.T) {
	assert.Equal(t, "0:05", FormatMinutes(5))
	assert.Equal(t, "1:00", FormatMinutes(60))
	assert.Equal(t, "10:07", FormatMinutes(607))
}

func TestPresentCountsLoginsOnly(t *testing.T) {
	sessions := []Session{{Login: at(9, 0)}, {Login: at(9, 5)}, {}}
	assert.Equal(t, 2, Present(sessions))
}

func TestOnDayFiltersByNormalizedDay(t *testing.T) {
	sessions := []Session{
		{EmployeeID: "EMP01", Day: "2024-06-15"},
		{EmployeeID: "EMP02", Day: "2024-06-14"},
	}
	today := OnDay(sessions, "2024-06-15")
	assert.Len(t, today, 1)
	assert.Equal(t, "EMP01", today[0].EmployeeID)
}
