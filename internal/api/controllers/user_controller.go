package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"voya/internal/models/request_models"
	"voya/internal/services"
	"voya/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// currentUserID resolves the authenticated user's id set by the JWT
// middleware. The second return reports whether the id was usable.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("user_id")
	userID, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return uuid.Nil, false
	}
	return userID, true
}

// Register godoc
// @Summary Register a new user
// @Description Create a new user account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /users/register [post]
func (u *UserController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.userService.Register(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User registered successfully")
}

// Login godoc
// @Summary Login
// @Description Authenticate a user and return a token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /users/login [post]
func (u *UserController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := u.userService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Login successful")
}

// Update godoc
// @Summary Update the current user
// @Description Update profile fields of the authenticated user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdateUserRequest true "Update payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me [put]
func (u *UserController) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.Update(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "User updated successfully")
}

// Delete godoc
// @Summary Delete the current user
// @Description Remove the authenticated user's account
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me [delete]
func (u *UserController) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := u.userService.Delete(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "User deleted successfully")
}
