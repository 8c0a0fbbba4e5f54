package auth

import "time"

type User struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Login     string    `gorm:"column:login;type:varchar(255);uniqueIndex:uq_user_login;not null"`
	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex:uq_user_email;not null"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Password  string    `gorm:"column:password;type:varchar(255);not null"`
	Phone     string    `gorm:"column:phone;type:varchar(50)"`
	Active    bool      `gorm:"column:active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
