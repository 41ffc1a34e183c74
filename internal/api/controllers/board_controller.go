package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"voya/internal/models/request_models"
	"voya/internal/services"
	"voya/pkg/utils"
)

type BoardController struct {
	boardService services.BoardServiceInterface
}

func NewBoardController(boardService services.BoardServiceInterface) *BoardController {
	return &BoardController{
		boardService: boardService,
	}
}

func pagingParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	return page, pageSize
}

// CreateBoard godoc
// @Summary Create a board post
// @Tags Boards
// @Accept json
// @Produce json
// @Param request body request_models.CreateBoardRequest true "Board payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /boards [post]
func (b *BoardController) CreateBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	boardID, err := b.boardService.CreateBoard(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"board_id": boardID.String()}, "Board created successfully")
}

// GetBoardList godoc
// @Summary List board posts
// @Tags Boards
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /boards [get]
func (b *BoardController) GetBoardList(c *gin.Context) {
	page, pageSize := pagingParams(c)

	boards, err := b.boardService.GetBoardList(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, boards, "Boards fetched successfully")
}

// GetBoardDetail godoc
// @Summary Get a board post with its latest comments
// @Tags Boards
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /boards/{id} [get]
func (b *BoardController) GetBoardDetail(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid board id")
		return
	}

	board, err := b.boardService.GetBoardDetail(c.Request.Context(), boardID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, board, "Board fetched successfully")
}

// UpdateBoard godoc
// @Summary Update a board post
// @Tags Boards
// @Accept json
// @Produce json
// @Param id path string true "Board ID"
// @Param request body request_models.UpdateBoardRequest true "Board payload"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /boards/{id} [put]
func (b *BoardController) UpdateBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid board id")
		return
	}

	var req request_models.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := b.boardService.UpdateBoard(c.Request.Context(), boardID, userID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Board updated successfully")
}

// DeleteBoard godoc
// @Summary Delete a board post
// @Tags Boards
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /boards/{id} [delete]
func (b *BoardController) DeleteBoard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid board id")
		return
	}

	if err := b.boardService.DeleteBoard(c.Request.Context(), boardID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Board deleted successfully")
}

// ReportBoard godoc
// @Summary Report a board post
// @Tags Boards
// @Produce json
// @Param id path string true "Board ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /boards/{id}/report [post]
func (b *BoardController) ReportBoard(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid board id")
		return
	}

	if err := b.boardService.ReportBoard(c.Request.Context(), boardID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Board reported successfully")
}

// CreateComment godoc
// @Summary Comment on a board post
// @Tags Boards
// @Accept json
// @Produce json
// @Param id path string true "Board ID"
// @Param request body request_models.CreateCommentRequest true "Comment payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /boards/{id}/comments [post]
func (b *BoardController) CreateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid board id")
		return
	}

	var req request_models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	commentID, err := b.boardService.CreateComment(c.Request.Context(), boardID, userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"comment_id": commentID.String()}, "Comment created successfully")
}

// ListComments godoc
// @Summary List comments on a board post
// @Tags Boards
// @Produce json
// @Param id path string true "Board ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /boards/{id}/comments [get]
func (b *BoardController) ListComments(c *gin.Context) {
	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid board id")
		return
	}

	page, pageSize := pagingParams(c)

	comments, err := b.boardService.ListComments(c.Request.Context(), boardID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}

// DeleteComment godoc
// @Summary Delete a comment
// @Tags Boards
// @Produce json
// @Param commentId path string true "Comment ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /comments/{commentId} [delete]
func (b *BoardController) DeleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid comment id")
		return
	}

	if err := b.boardService.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Comment deleted successfully")
}
