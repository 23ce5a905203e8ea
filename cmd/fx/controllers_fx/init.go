package controllers_fx

import (
	"go.uber.org/fx"

	"tripweave/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewFileController),
	fx.Provide(controllers.NewProfileController))
