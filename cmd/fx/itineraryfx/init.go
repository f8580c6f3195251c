package itineraryfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"withme/internal/repositories"
	"withme/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	tripRepo repositories.TripRepository,
	travelTimes services.TravelTimeServiceInterface,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, tripRepo, travelTimes, logger)
}
