package db_models

type User struct {
	BaseModel
	Email            string `gorm:"unique"`
	PasswordHash     string
	UserName         string
	UserNickname     string
	UserProfileImage string
	Role             string `gorm:"default:USER"`

	Boards   []Board   `gorm:"foreignKey:UserID"`
	Comments []Comment `gorm:"foreignKey:UserID"`
}
