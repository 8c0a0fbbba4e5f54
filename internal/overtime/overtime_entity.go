package overtime

import "time"

type OvertimeType struct {
	ID             int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string  `gorm:"column:name;type:varchar(100);not null"`
	RateMultiplier float64 `gorm:"column:rate_multiplier;default:1.5"`
	Active         bool    `gorm:"column:active;default:true"`
}

func (OvertimeType) TableName() string {
	return "overtime_types"
}

type Overtime struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID     int64     `gorm:"column:employee_id;not null;index"`
	OvertimeTypeID int64     `gorm:"column:overtime_type_id;not null"`
	StartAt        time.Time `gorm:"column:start_at;not null"`
	EndAt          time.Time `gorm:"column:end_at;not null"`
	DurationHours  float64   `gorm:"column:duration_hours"`
	Reason         string    `gorm:"column:reason;type:text"`
	Status         string    `gorm:"column:status;type:varchar(20);default:'pending'"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`

	OvertimeType *OvertimeType `gorm:"foreignKey:OvertimeTypeID;references:ID"`
}

func (Overtime) TableName() string {
	return "overtimes"
}
