package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voya/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByEmailAndNotID(ctx context.Context, email string, id uuid.UUID) (bool, error)
	Update(ctx context.Context, user *db_models.User) error
	Delete(ctx context.Context, user *db_models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ExistsByEmailAndNotID(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).
		Where("email = ? AND id <> ?", email, id).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Update(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Delete(user).Error
}
