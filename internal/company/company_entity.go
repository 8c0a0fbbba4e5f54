package company

import "time"

// Koordinat default kantor, dipakai kalau company belum pernah diset.
const (
	DefaultLatitude  = -6.969182
	DefaultLongitude = 107.629251
)

type Company struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Latitude  float64   `gorm:"column:latitude"`
	Longitude float64   `gorm:"column:longitude"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Company) TableName() string {
	return "companies"
}
