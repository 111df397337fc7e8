package request

// CheckInRequest represents a check-in request
type CheckInRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Notes      *string `json:"notes"`
}

// CheckOutRequest represents a check-out request
type CheckOutRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

// AttendanceFilterRequest represents attendance list parameters
type AttendanceFilterRequest struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// MonthQueryRequest selects a payroll month
type MonthQueryRequest struct {
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// ReportQueryRequest selects a reporting period
type ReportQueryRequest struct {
	From        string `form:"from" binding:"required,datetime=2006-01-02"`
	To          string `form:"to" binding:"required,datetime=2006-01-02"`
	Granularity string `form:"granularity" binding:"omitempty,oneof=daily monthly"`
}
