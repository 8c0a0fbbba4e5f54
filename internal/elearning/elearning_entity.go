package elearning

import "time"

type Slide struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"`
	Description string    `gorm:"column:description;type:text"`
	DocumentURL string    `gorm:"column:document_url;type:text"`
	VideoURL    string    `gorm:"column:video_url;type:text"`
	Sequence    int       `gorm:"column:sequence;default:0"`
	Active      bool      `gorm:"column:active;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Slide) TableName() string {
	return "slides"
}
