package board_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voya/internal/repositories"
	"voya/internal/services"
)

var Module = fx.Provide(
	provideBoardService, provideBoardRepo, provideCommentRepo)

func provideBoardRepo(db *gorm.DB) repositories.BoardRepository {
	return repositories.NewBoardRepository(db)
}

func provideCommentRepo(db *gorm.DB) repositories.CommentRepository {
	return repositories.NewCommentRepository(db)
}

func provideBoardService(
	boardRepo repositories.BoardRepository,
	commentRepo repositories.CommentRepository,
	userRepo repositories.UserRepository,
) services.BoardServiceInterface {
	return services.NewBoardService(boardRepo, commentRepo, userRepo)
}
