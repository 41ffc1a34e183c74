package db_models

import "github.com/google/uuid"

type Cart struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index"`
	Region string    `gorm:"size:100"`

	Tours []Tour `gorm:"foreignKey:CartID"`
}
