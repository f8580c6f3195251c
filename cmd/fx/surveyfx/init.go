package surveyfx

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"withme/internal/repositories"
	"withme/internal/services"
)

var Module = fx.Provide(
	provideSurveyRepo, provideTriggerService)

func provideSurveyRepo(db *gorm.DB) repositories.SurveyRepository {
	return repositories.NewSurveyRepository(db)
}

func provideTriggerService(surveyRepo repositories.SurveyRepository, logger *zap.Logger) services.SurveyTriggerServiceInterface {
	policy := services.TriggerPolicy(os.Getenv("SURVEY_TRIGGER_POLICY"))
	return services.NewSurveyTriggerService(surveyRepo, policy, logger)
}
