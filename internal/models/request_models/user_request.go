package request_models

type RegisterRequest struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	UserName         string `json:"user_name" binding:"required,min=2,max=50"`
	UserNickname     string `json:"user_nickname" binding:"required,min=2,max=50"`
	UserProfileImage string `json:"user_profile_image"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateUserRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	UserName         string `json:"user_name"`
	UserNickname     string `json:"user_nickname"`
	UserProfileImage string `json:"user_profile_image"`
}
