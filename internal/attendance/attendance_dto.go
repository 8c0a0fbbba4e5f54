package attendance

type ToggleRequest struct {
	Latitude    Coordinate `json:"latitude"`
	Longitude   Coordinate `json:"longitude"`
	Location    string     `json:"location"`
	CameraImage string     `json:"camera_image"`
	Notes       string     `json:"notes"`
}

type ToggleResponse struct {
	Action             string `json:"action"` // check_in | check_out
	AttendanceID       int64  `json:"attendance_id"`
	IsCheckedIn        bool   `json:"is_checked_in"`
	CheckInTime        string `json:"check_in_time,omitempty"`
	CheckOutTime       string `json:"check_out_time,omitempty"`
	WorkingHours       string `json:"working_hours,omitempty"`
	DistanceFromOffice string `json:"distance_from_office"`
	IsLate             bool   `json:"is_late"`
}

type StatusResponse struct {
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	IsCheckedIn  bool   `json:"is_checked_in"`
	AttendanceID int64  `json:"attendance_id,omitempty"`
	CheckInTime  string `json:"check_in_time,omitempty"`
	CheckOutTime string `json:"check_out_time,omitempty"`
	WorkingHours string `json:"working_hours,omitempty"`
}

type RecordResponse struct {
	AttendanceID int64  `json:"attendance_id"`
	Date         string `json:"date"` // YYYY-MM-DD dalam WIB
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time,omitempty"`
	WorkingHours string `json:"working_hours"`
	Status       string `json:"status"` // Present | Late
	IsLate       bool   `json:"is_late"`
	Notes        string `json:"notes,omitempty"`
}

type DashboardResponse struct {
	UserInfo UserInfo       `json:"user_info"`
	Today    StatusResponse `json:"current_status"`
	Monthly  MonthlySummary `json:"monthly_summary"`
}

type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type MonthlySummary struct {
	Month       string `json:"month"` // YYYY-MM
	PresentDays int    `json:"present_days"`
	LateDays    int    `json:"late_days"`
	AbsentDays  int    `json:"absent_days"`
	WorkingDays int    `json:"working_days"`
}

type ListFilter struct {
	EmployeeID int64
	From       string // YYYY-MM-DD (WIB)
	To         string
	Limit      int
	Offset     int
}
