package expensesfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"withme/internal/repositories"
	"withme/internal/services"
)

var Module = fx.Provide(
	provideExpenseRepo, provideExpenseService)

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideExpenseService(
	expenseRepo repositories.ExpenseRepository,
	tripRepo repositories.TripRepository,
	logger *zap.Logger,
) services.ExpenseServiceInterface {
	return services.NewExpenseService(expenseRepo, tripRepo, logger)
}
