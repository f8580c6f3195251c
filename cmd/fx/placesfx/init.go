package placesfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"withme/internal/repositories"
	"withme/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, provideParser, provideImportService)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func provideParser(logger *zap.Logger) services.MapsListParser {
	return services.NewGoogleMapsListParser(logger)
}

func provideImportService(
	parser services.MapsListParser,
	placeRepo repositories.PlaceRepository,
	logger *zap.Logger,
) services.PlacesImportServiceInterface {
	return services.NewPlacesImportService(parser, placeRepo, logger)
}
