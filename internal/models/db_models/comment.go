package db_models

import "github.com/google/uuid"

type Comment struct {
	BaseModel
	BoardID uuid.UUID `gorm:"type:uuid;index"`
	UserID  uuid.UUID `gorm:"type:uuid;index"`
	Content string

	User User `gorm:"foreignKey:UserID"`
}
