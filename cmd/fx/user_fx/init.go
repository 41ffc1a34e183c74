package user_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voya/internal/repositories"
	"voya/internal/services"
	mem "voya/pkg/memcache"
)

var Module = fx.Provide(
	provideUserService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepository, loginAttempts mem.LoginAttemptStore) services.UserServiceInterface {
	return services.NewUserService(userRepo, loginAttempts)
}
