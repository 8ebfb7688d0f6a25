package attendance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"innomatrics.com/go-api/pkg/console-service/metrics"
	"innomatrics.com/go-api/pkg/shared/helper"
)

// Session status values. A session moves working -> break/lunch -> working
// -> completed; idle is the state before the first login of the day.
const (
	StatusWorking   = "working"
	StatusBreak     = "break"
	StatusLunch     = "lunch"
	StatusCompleted = "completed"
	StatusIdle      = "idle"
)

// Punch actions accepted by the punch endpoint.
const (
	PunchLogin      = "login"
	PunchLogout     = "logout"
	PunchBreakStart = "break_start"
	PunchBreakEnd   = "break_end"
	PunchLunchStart = "lunch_start"
	PunchLunchEnd   = "lunch_end"
)

type PunchRequest struct {
	EmployeeId   string `json:"employee_id" validate:"required"`
	EmployeeName string `json:"employee_name" validate:"required"`
	Action       string `json:"action" validate:"required,oneof=login logout break_start break_end lunch_start lunch_end"`
}

type Analytics struct {
	Day             string         `json:"day"`
	TotalEmployees  int            `json:"total_employees"`
	Present         int            `json:"present"`
	StatusCounts    map[string]int `json:"status_counts"`
	AverageHours    string         `json:"average_hours"`
	Productivity    int            `json:"productivity"`
	AttendanceRate  int            `json:"attendance_rate"`
	AttendanceTrend int            `json:"attendance_trend"`
	WeeklyRates     []DayRate      `json:"weekly_rates"`
}

type DayRate struct {
	Day  string `json:"day"`
	Rate int    `json:"rate"`
}

func toSession(doc bson.M) metrics.Session {
	s := metrics.Session{
		EmployeeID:   helper.DocString(doc, "employee_id"),
		EmployeeName: helper.DocString(doc, "employee_name"),
		Status:       helper.DocString(doc, "status"),
		Day:          helper.DocString(doc, "day"),
	}
	if t := helper.DocTime(doc, "login_time"); !t.IsZero() {
		s.Login = &t
	}
	if t := helper.DocTime(doc, "logout_time"); !t.IsZero() {
		s.Logout = &t
	}
	return s
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
