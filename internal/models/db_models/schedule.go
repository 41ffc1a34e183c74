package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ScheduleTypePersonal = "PERSONAL"
	ScheduleTypeGroup    = "GROUP"
)

type Schedule struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;index"`
	CartID       uuid.UUID `gorm:"type:uuid"`
	ScheduleName string    `gorm:"size:100"`
	StartDate    time.Time
	EndDate      time.Time
	StartTime    string `gorm:"size:8"` // HH:MM
	Budget       int64
	ScheduleType string `gorm:"size:20"`

	// PlanJSON holds the AI-generated daily plan document, stored only
	// after it passed schema validation.
	PlanJSON string

	Cart Cart `gorm:"foreignKey:CartID"`
}
