package controllersfx

import (
	"go.uber.org/fx"

	"withme/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewSurveysController),
	fx.Provide(controllers.NewExpensesController),
	fx.Provide(controllers.NewSuggestionsController))
