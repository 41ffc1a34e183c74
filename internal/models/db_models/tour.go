package db_models

import "github.com/google/uuid"

// Tour is one selected point of interest inside a cart. ContentID is the
// external catalog identifier the AI plan refers back to.
type Tour struct {
	BaseModel
	CartID    uuid.UUID `gorm:"type:uuid;index"`
	ContentID string    `gorm:"size:50;index"`
	Title     string    `gorm:"size:255"`
	Latitude  float64
	Longitude float64
	Address   string `gorm:"size:255"`
	Image     string `gorm:"size:255"`
	Category  string `gorm:"size:50"`
	Price     int64
}
