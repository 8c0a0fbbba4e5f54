package leave

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Leave struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID int64     `gorm:"column:employee_id;not null;index"`
	LeaveType  string    `gorm:"column:leave_type;type:varchar(50);not null"`
	DateFrom   time.Time `gorm:"column:date_from;type:date;not null"`
	DateTo     time.Time `gorm:"column:date_to;type:date;not null"`
	Reason     string    `gorm:"column:reason;type:text"`
	Status     string    `gorm:"column:status;type:varchar(20);default:'pending'"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (Leave) TableName() string {
	return "leaves"
}
