package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"voya/internal/models/db_models"
)

type BoardRepository interface {
	Insert(ctx context.Context, board *db_models.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Board, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Board, error)
	Update(ctx context.Context, board *db_models.Board) error
	Delete(ctx context.Context, board *db_models.Board) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	IncrementReportCount(ctx context.Context, id uuid.UUID) error
}

type boardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) Insert(ctx context.Context, board *db_models.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *boardRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Board, error) {
	var board db_models.Board
	err := r.db.WithContext(ctx).Preload("User").First(&board, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Board, error) {
	var boards []db_models.Board
	err := r.db.WithContext(ctx).
		Preload("User").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&boards).Error
	return boards, err
}

func (r *boardRepository) Update(ctx context.Context, board *db_models.Board) error {
	return r.db.WithContext(ctx).Save(board).Error
}

func (r *boardRepository) Delete(ctx context.Context, board *db_models.Board) error {
	return r.db.WithContext(ctx).Delete(board).Error
}

func (r *boardRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.Board{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *boardRepository) IncrementReportCount(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&db_models.Board{}).
		Where("id = ?", id).
		UpdateColumn("report_count", gorm.Expr("report_count + 1")).Error
}
