package events

import "time"

const AttendanceActivityTopic = "hr.attendance.activity.v1"

const (
	AttendanceCheckedIn  = "attendance.checked_in"
	AttendanceCheckedOut = "attendance.checked_out"
)

type AttendanceActivityEvent struct {
	EventType    string    `json:"event_type"`
	AttendanceID int64     `json:"attendance_id"`
	EmployeeID   int64     `json:"employee_id"`
	WorkingHours string    `json:"working_hours,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}
