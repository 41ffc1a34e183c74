package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"voya/internal/models/db_models"
	"voya/internal/models/request_models"
	"voya/internal/models/response_models"
	"voya/internal/repositories"
	"voya/pkg/utils"
)

const boardDetailCommentCount = 5

type BoardServiceInterface interface {
	CreateBoard(ctx context.Context, userID uuid.UUID, request request_models.CreateBoardRequest) (uuid.UUID, error)
	GetBoardList(ctx context.Context, page, pageSize int) ([]response_models.BoardListItem, error)
	GetBoardDetail(ctx context.Context, boardID uuid.UUID) (*response_models.BoardDetailResponse, error)
	UpdateBoard(ctx context.Context, boardID, userID uuid.UUID, request request_models.UpdateBoardRequest) error
	DeleteBoard(ctx context.Context, boardID, userID uuid.UUID) error
	ReportBoard(ctx context.Context, boardID uuid.UUID) error
	CreateComment(ctx context.Context, boardID, userID uuid.UUID, request request_models.CreateCommentRequest) (uuid.UUID, error)
	ListComments(ctx context.Context, boardID uuid.UUID, page, pageSize int) (*response_models.CommentListResponse, error)
	DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error
}

type BoardService struct {
	boardRepo   repositories.BoardRepository
	commentRepo repositories.CommentRepository
	userRepo    repositories.UserRepository
}

func NewBoardService(
	boardRepo repositories.BoardRepository,
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
) BoardServiceInterface {
	return &BoardService{
		boardRepo:   boardRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
	}
}

func (b *BoardService) CreateBoard(ctx context.Context, userID uuid.UUID, request request_models.CreateBoardRequest) (uuid.UUID, error) {
	user, err := b.userRepo.FindByID(ctx, userID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if user == nil {
		return uuid.Nil, utils.ErrUserNotFound
	}

	board := &db_models.Board{
		UserID:   userID,
		Title:    request.Title,
		Content:  request.Content,
		Tag:      request.Tag,
		ImageURL: request.ImageURL,
	}
	if err := b.boardRepo.Insert(ctx, board); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return board.ID, nil
}

func (b *BoardService) GetBoardList(ctx context.Context, page, pageSize int) ([]response_models.BoardListItem, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	boards, err := b.boardRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.BoardListItem, 0, len(boards))
	for _, board := range boards {
		items = append(items, response_models.BoardListItem{
			BoardID:      board.ID.String(),
			Title:        board.Title,
			UserNickname: board.User.UserNickname,
			CreatedAt:    board.CreatedAt,
			ViewCount:    board.ViewCount,
			ImageURL:     board.ImageURL,
			Tag:          board.Tag,
		})
	}
	return items, nil
}

func (b *BoardService) GetBoardDetail(ctx context.Context, boardID uuid.UUID) (*response_models.BoardDetailResponse, error) {
	board, err := b.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if board == nil {
		return nil, utils.ErrBoardNotFound
	}

	if err := b.boardRepo.IncrementViewCount(ctx, boardID); err != nil {
		// detail still renders when the counter update fails
		log.Printf("Failed to increment view count for board %s: %v", boardID, err)
	}

	comments, hasNext, err := b.commentRepo.ListByBoard(ctx, boardID, 1, boardDetailCommentCount)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.BoardDetailResponse{
		BoardID:        board.ID.String(),
		Title:          board.Title,
		Content:        board.Content,
		UserNickname:   board.User.UserNickname,
		CreatedAt:      board.CreatedAt,
		ViewCount:      board.ViewCount,
		ImageURL:       board.ImageURL,
		Tag:            board.Tag,
		Comments:       toCommentResponses(comments),
		HasNextComment: hasNext,
	}, nil
}

func (b *BoardService) UpdateBoard(ctx context.Context, boardID, userID uuid.UUID, request request_models.UpdateBoardRequest) error {
	board, err := b.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if board == nil {
		return utils.ErrBoardNotFound
	}
	if board.UserID != userID {
		return utils.ErrNotBoardOwner
	}

	board.Title = request.Title
	board.Content = request.Content
	board.Tag = request.Tag
	board.ImageURL = request.ImageURL

	if err := b.boardRepo.Update(ctx, board); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (b *BoardService) DeleteBoard(ctx context.Context, boardID, userID uuid.UUID) error {
	board, err := b.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if board == nil {
		return utils.ErrBoardNotFound
	}
	if board.UserID != userID {
		return utils.ErrNotBoardOwner
	}
	if err := b.boardRepo.Delete(ctx, board); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (b *BoardService) ReportBoard(ctx context.Context, boardID uuid.UUID) error {
	board, err := b.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if board == nil {
		return utils.ErrBoardNotFound
	}
	if err := b.boardRepo.IncrementReportCount(ctx, boardID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (b *BoardService) CreateComment(ctx context.Context, boardID, userID uuid.UUID, request request_models.CreateCommentRequest) (uuid.UUID, error) {
	board, err := b.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if board == nil {
		return uuid.Nil, utils.ErrBoardNotFound
	}

	comment := &db_models.Comment{
		BoardID: boardID,
		UserID:  userID,
		Content: request.Content,
	}
	if err := b.commentRepo.Insert(ctx, comment); err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	return comment.ID, nil
}

func (b *BoardService) ListComments(ctx context.Context, boardID uuid.UUID, page, pageSize int) (*response_models.CommentListResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	comments, hasNext, err := b.commentRepo.ListByBoard(ctx, boardID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.CommentListResponse{
		Comments: toCommentResponses(comments),
		HasNext:  hasNext,
	}, nil
}

func (b *BoardService) DeleteComment(ctx context.Context, commentID, userID uuid.UUID) error {
	comment, err := b.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if comment == nil {
		return utils.ErrCommentNotFound
	}
	if comment.UserID != userID {
		return utils.ErrNotCommentOwner
	}
	if err := b.commentRepo.Delete(ctx, comment); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toCommentResponses(comments []db_models.Comment) []response_models.CommentResponse {
	out := make([]response_models.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, response_models.CommentResponse{
			CommentID:    comment.ID.String(),
			UserNickname: comment.User.UserNickname,
			Content:      comment.Content,
			CreatedAt:    comment.CreatedAt,
		})
	}
	return out
}
