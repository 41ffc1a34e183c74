package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voya/internal/models/db_models"
)

type ScheduleRepository interface {
	Insert(ctx context.Context, schedule *db_models.Schedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Schedule, error)
	Update(ctx context.Context, schedule *db_models.Schedule) error
	Delete(ctx context.Context, schedule *db_models.Schedule) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Insert(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Schedule, error) {
	var schedule db_models.Schedule
	err := r.db.WithContext(ctx).First(&schedule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepository) Delete(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Delete(schedule).Error
}
