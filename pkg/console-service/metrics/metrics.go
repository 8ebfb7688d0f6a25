// Package metrics computes dashboard counters from entity lists. Every
// function is total: missing optional fields drop an entity from the
// computation they affect, never panic it.
package metrics

import (
	"fmt"
	"time"
)

// Session is the metrics view of one work session. Login/Logout are nil
// when the employee has not punched that endpoint yet.
type Session struct {
	EmployeeID   string
	EmployeeName string
	Status       string
	Day          string // normalized YYYY-MM-DD
	Login        *time.Time
	Logout       *time.Time
}

// CountByStatus - exact, case-sensitive status tally.
func CountByStatus(sessions []Session) map[string]int {
	counts := make(map[string]int)
	for _, s := range sessions {
		counts[s.Status]++
	}
	return counts
}

// Rate returns 100*present/considered rounded to the nearest percent. The
// denominator floor of 1 keeps an empty cohort at 0 instead of dividing by
// zero; callers must not remove it.
func Rate(present, considered int) int {
	if considered < 1 {
		considered = 1
	}
	return int(float64(present)/float64(considered)*100 + 0.5)
}

// Trend - signed difference between today's and yesterday's rate.
func Trend(todayRate, yesterdayRate int) int {
	return todayRate - yesterdayRate
}

// AverageMinutes averages elapsed minutes over sessions that have both a
// login and a logout; incomplete sessions are excluded from numerator and
// denominator alike. Returns 0 when no session is complete.
func AverageMinutes(sessions []Session) float64 {
	total := 0
	count := 0
	for _, s := range sessions {
		if s.Login == nil || s.Logout == nil {
			continue
		}
		total += int(s.Logout.Sub(*s.Login).Minutes())
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// FormatMinutes renders minutes as H:MM - minutes zero-padded, hours not.
func FormatMinutes(minutes float64) string {
	if minutes <= 0 {
		return "0:00"
	}
	m := int(minutes)
	return fmt.Sprintf("%d:%02d", m/60, m%60)
}

// Present counts sessions with a recorded login.
func Present(sessions []Session) int {
	n := 0
	for _, s := range sessions {
		if s.Login != nil {
			n++
		}
	}
	return n
}

// WithStatus counts sessions currently in the given status.
func WithStatus(sessions []Session, status string) int {
	n := 0
	for _, s := range sessions {
		if s.Status == status {
			n++
		}
	}
	return n
}

// OnDay keeps sessions whose normalized day equals day.
func OnDay(sessions []Session, day string) []Session {
	var out []Session
	for _, s := range sessions {
		if s.Day == day {
			out = append(out, s)
		}
	}
	return out
}
