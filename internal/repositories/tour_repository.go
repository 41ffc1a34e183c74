package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voya/internal/models/db_models"
)

type TourRepository interface {
	Insert(ctx context.Context, tour *db_models.Tour) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Tour, error)
	FindByCartAndContentID(ctx context.Context, cartID uuid.UUID, contentID string) (*db_models.Tour, error)
	ListByCart(ctx context.Context, cartID uuid.UUID) ([]db_models.Tour, error)
	Delete(ctx context.Context, tour *db_models.Tour) error
	DeleteAllByCart(ctx context.Context, cartID uuid.UUID) error
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Insert(ctx context.Context, tour *db_models.Tour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *tourRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Tour, error) {
	var tour db_models.Tour
	err := r.db.WithContext(ctx).First(&tour, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) FindByCartAndContentID(ctx context.Context, cartID uuid.UUID, contentID string) (*db_models.Tour, error) {
	var tour db_models.Tour
	err := r.db.WithContext(ctx).
		First(&tour, "cart_id = ? AND content_id = ?", cartID, contentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) ListByCart(ctx context.Context, cartID uuid.UUID) ([]db_models.Tour, error) {
	var tours []db_models.Tour
	err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&tours).Error
	return tours, err
}

func (r *tourRepository) Delete(ctx context.Context, tour *db_models.Tour) error {
	return r.db.WithContext(ctx).Delete(tour).Error
}

func (r *tourRepository) DeleteAllByCart(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&db_models.Tour{}).Error
}
