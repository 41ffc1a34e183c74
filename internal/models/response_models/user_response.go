package response_models

type LoginResponse struct {
	Token            string `json:"token"`
	UserNickname     string `json:"user_nickname"`
	UserProfileImage string `json:"user_profile_image,omitempty"`
}

type UserResponse struct {
	Email            string `json:"email"`
	UserName         string `json:"user_name"`
	UserNickname     string `json:"user_nickname"`
	UserProfileImage string `json:"user_profile_image,omitempty"`
}
