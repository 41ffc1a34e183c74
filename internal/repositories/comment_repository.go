package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voya/internal/models/db_models"
)

type CommentRepository interface {
	Insert(ctx context.Context, comment *db_models.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Comment, error)
	// ListByBoard returns one page of comments newest first plus whether a
	// following page exists.
	ListByBoard(ctx context.Context, boardID uuid.UUID, page, pageSize int) ([]db_models.Comment, bool, error)
	Delete(ctx context.Context, comment *db_models.Comment) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Insert(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Comment, error) {
	var comment db_models.Comment
	err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByBoard(ctx context.Context, boardID uuid.UUID, page, pageSize int) ([]db_models.Comment, bool, error) {
	var comments []db_models.Comment
	// Fetch one extra row to detect a next page without a count query.
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("board_id = ?", boardID).
		Limit(pageSize + 1).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, false, err
	}

	hasNext := len(comments) > pageSize
	if hasNext {
		comments = comments[:pageSize]
	}
	return comments, hasNext, nil
}

func (r *commentRepository) Delete(ctx context.Context, comment *db_models.Comment) error {
	return r.db.WithContext(ctx).Delete(comment).Error
}
