package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voya/internal/models/db_models"
)

type CartRepository interface {
	Insert(ctx context.Context, cart *db_models.Cart) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Cart, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Cart, error)
	Update(ctx context.Context, cart *db_models.Cart) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Insert(ctx context.Context, cart *db_models.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

func (r *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Cart, error) {
	var cart db_models.Cart
	err := r.db.WithContext(ctx).Preload("Tours").First(&cart, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*db_models.Cart, error) {
	var cart db_models.Cart
	err := r.db.WithContext(ctx).Preload("Tours").First(&cart, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Update(ctx context.Context, cart *db_models.Cart) error {
	return r.db.WithContext(ctx).Save(cart).Error
}
