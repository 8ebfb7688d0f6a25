package leave

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type LeaveRequest struct {
	EmployeeId   string `json:"employee_id" validate:"required"`
	EmployeeName string `json:"employee_name" validate:"required"`
	FromDate     string `json:"from_date" validate:"required"`
	ToDate       string `json:"to_date" validate:"required"`
	Reason       string `json:"reason" validate:"required"`
}

type ReviewRequest struct {
	Status         string `json:"status" validate:"required,oneof=approved rejected"`
	ManagerComment string `json:"manager_comment"`
}

type HolidayRequest struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date" validate:"required"`
}

type BreakRequest struct {
	Title     string `json:"title" validate:"required"`
	Date      string `json:"date" validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// CalendarEvent is one entry of the merged calendar feed.
type CalendarEvent struct {
	Id       string `json:"_id"`
	Kind     string `json:"kind"` // holiday, break or leave
	Title    string `json:"title"`
	Date     string `json:"date"`
	EndDate  string `json:"end_date,omitempty"`
	Start    string `json:"start_time,omitempty"`
	End      string `json:"end_time,omitempty"`
	Employee string `json:"employee_name,omitempty"`
	Status   string `json:"status,omitempty"`
}
