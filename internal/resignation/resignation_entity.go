package resignation

import "time"

type Resignation struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID    int64     `gorm:"column:employee_id;not null;index"`
	EffectiveDate time.Time `gorm:"column:effective_date;type:date;not null"`
	Reason        string    `gorm:"column:reason;type:text"`
	Status        string    `gorm:"column:status;type:varchar(20);default:'pending'"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Resignation) TableName() string {
	return "resignations"
}
