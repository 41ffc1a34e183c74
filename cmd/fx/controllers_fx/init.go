package controllers_fx

import (
	"go.uber.org/fx"
	"voya/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewBoardController),
	fx.Provide(controllers.NewCartController),
	fx.Provide(controllers.NewScheduleController),
	fx.Provide(controllers.NewFileController))
