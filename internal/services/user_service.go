package services

import (
	"context"
	"log"
	"regexp"

	"github.com/google/uuid"
	"voya/internal/models/db_models"
	"voya/internal/models/request_models"
	"voya/internal/models/response_models"
	"voya/internal/repositories"
	mem "voya/pkg/memcache"
	"voya/pkg/utils"
)

type UserServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	Update(ctx context.Context, userID uuid.UUID, request request_models.UpdateUserRequest) (*response_models.UserResponse, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type UserService struct {
	userRepo      repositories.UserRepository
	loginAttempts mem.LoginAttemptStore
}

func NewUserService(userRepo repositories.UserRepository, loginAttempts mem.LoginAttemptStore) UserServiceInterface {
	return &UserService{
		userRepo:      userRepo,
		loginAttempts: loginAttempts,
	}
}

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

func (u *UserService) Register(ctx context.Context, request request_models.RegisterRequest) error {
	if !emailRegex.MatchString(request.Email) {
		return utils.ErrInvalidEmail
	}

	exists, err := u.userRepo.ExistsByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if exists {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	user := &db_models.User{
		Email:            request.Email,
		PasswordHash:     hashedPassword,
		UserName:         request.UserName,
		UserNickname:     request.UserNickname,
		UserProfileImage: request.UserProfileImage,
		Role:             "USER",
	}
	if err := u.userRepo.Insert(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (u *UserService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	email := request.Email

	if u.loginAttempts.IsBlocked(email) {
		return nil, utils.ErrTooManyLoginAttempts
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		u.loginAttempts.RecordFailure(email)
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		u.loginAttempts.RecordFailure(email)
		return nil, utils.ErrInvalidCredentials
	}

	u.loginAttempts.Reset(email)
	log.Printf("Login succeeded - user %s", user.ID)

	token, err := utils.CreateToken(user.ID, user.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token:            token,
		UserNickname:     user.UserNickname,
		UserProfileImage: user.UserProfileImage,
	}, nil
}

func (u *UserService) Update(ctx context.Context, userID uuid.UUID, request request_models.UpdateUserRequest) (*response_models.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if request.Email != "" {
		if !emailRegex.MatchString(request.Email) {
			return nil, utils.ErrInvalidEmail
		}
		taken, err := u.userRepo.ExistsByEmailAndNotID(ctx, request.Email, user.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if taken {
			return nil, utils.ErrEmailAlreadyExists
		}
		user.Email = request.Email
	}

	if request.Password != "" {
		hashedPassword, err := utils.HashPassword(request.Password)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		user.PasswordHash = hashedPassword
	}
	if request.UserName != "" {
		user.UserName = request.UserName
	}
	if request.UserNickname != "" {
		user.UserNickname = request.UserNickname
	}
	if request.UserProfileImage != "" {
		user.UserProfileImage = request.UserProfileImage
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.UserResponse{
		Email:            user.Email,
		UserName:         user.UserName,
		UserNickname:     user.UserNickname,
		UserProfileImage: user.UserProfileImage,
	}, nil
}

func (u *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	if err := u.userRepo.Delete(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
