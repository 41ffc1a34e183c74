package db_models

import "github.com/google/uuid"

type Board struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string    `gorm:"size:100"`
	Content     string
	Tag         string `gorm:"size:50"`
	ImageURL    string
	ViewCount   int `gorm:"default:0"`
	ReportCount int `gorm:"default:0"`

	User     User      `gorm:"foreignKey:UserID"`
	Comments []Comment `gorm:"foreignKey:BoardID"`
}
