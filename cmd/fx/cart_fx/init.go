package cart_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voya/internal/repositories"
	"voya/internal/services"
)

var Module = fx.Provide(
	provideCartService, provideCartRepo, provideTourRepo)

func provideCartRepo(db *gorm.DB) repositories.CartRepository {
	return repositories.NewCartRepository(db)
}

func provideTourRepo(db *gorm.DB) repositories.TourRepository {
	return repositories.NewTourRepository(db)
}

func provideCartService(cartRepo repositories.CartRepository, tourRepo repositories.TourRepository) services.CartServiceInterface {
	return services.NewCartService(cartRepo, tourRepo)
}
