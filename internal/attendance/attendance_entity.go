package attendance

import "time"

// Attendance menyimpan satu siklus kehadiran. CheckOut nil berarti siklus
// masih terbuka. Semua timestamp disimpan UTC, presentasi di layer service.
type Attendance struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID   int64      `gorm:"column:employee_id;not null;index:idx_attendance_employee_checkin"`
	CheckIn      time.Time  `gorm:"column:check_in;not null;index:idx_attendance_employee_checkin"`
	CheckOut     *time.Time `gorm:"column:check_out"`
	WorkingHours string     `gorm:"column:working_hours;type:varchar(8);default:'00:00:00'"`
	Latitude     string     `gorm:"column:latitude;type:varchar(32)"`
	Longitude    string     `gorm:"column:longitude;type:varchar(32)"`
	SelfiePhoto  string     `gorm:"column:selfie_photo;type:text"`
	Notes        string     `gorm:"column:notes;type:text"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}
