package events

import "time"

const EmployeeCreatedTopic = "hr.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID int64     `json:"employee_id"`
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}
