package employee

import (
	"time"
)

type Employee struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	UserID       int64     `gorm:"column:user_id;uniqueIndex;not null"`
	WorkEmail    string    `gorm:"column:work_email;type:varchar(255)"`
	WorkPhone    string    `gorm:"column:work_phone;type:varchar(50)"`
	CompanyID    int64     `gorm:"column:company_id;not null;index"`
	DepartmentID *int64    `gorm:"column:department_id;index"`
	JobTitle     *string   `gorm:"column:job_title;type:varchar(255)"`
	Active       bool      `gorm:"column:active;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`

	Department *DepartmentRef `gorm:"foreignKey:DepartmentID;references:ID"`
}

func (Employee) TableName() string {
	return "employees"
}

type DepartmentRef struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (DepartmentRef) TableName() string {
	return "departments"
}

// UserRef hanya untuk membaca identitas user saat provisioning employee,
// tabelnya dimiliki modul auth.
type UserRef struct {
	ID    int64  `gorm:"primaryKey"`
	Login string `gorm:"column:login"`
	Name  string `gorm:"column:name"`
	Email string `gorm:"column:email"`
	Phone string `gorm:"column:phone"`
}

func (UserRef) TableName() string {
	return "users"
}
