package schedule_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voya/internal/repositories"
	"voya/internal/services"
)

var Module = fx.Provide(
	provideScheduleService, provideScheduleRepo)

func provideScheduleRepo(db *gorm.DB) repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(db)
}

func provideScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	cartRepo repositories.CartRepository,
	tourRepo repositories.TourRepository,
	aiService services.AIServiceInterface,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(scheduleRepo, cartRepo, tourRepo, aiService)
}
