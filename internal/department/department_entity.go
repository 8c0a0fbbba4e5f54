package department

import "time"

type Department struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	CompanyID int64     `gorm:"column:company_id;index"`
	ManagerID *int64    `gorm:"column:manager_id"`
	Active    bool      `gorm:"column:active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Department) TableName() string {
	return "departments"
}
