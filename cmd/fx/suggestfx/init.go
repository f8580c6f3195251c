package suggestfx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"withme/internal/services"
)

var Module = fx.Provide(provideSuggestService)

func provideSuggestService(logger *zap.Logger) services.SuggestServiceInterface {
	return services.NewSuggestService(os.Getenv("OPENAI_API_KEY"), logger)
}
