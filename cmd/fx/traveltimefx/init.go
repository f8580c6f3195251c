package traveltimefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"withme/internal/services"
	"withme/pkg/memcache"
)

var Module = fx.Provide(provideTravelTimeService)

func provideTravelTimeService(logger *zap.Logger) services.TravelTimeServiceInterface {
	return services.NewTravelTimeService(
		services.TravelTimeConfigFromEnv(),
		memcache.NewTravelPairCache(),
		logger,
	)
}
