package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"withme/internal/models/db_models"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *db_models.Expense) (uuid.UUID, error)
	ListByTrip(ctx context.Context, tripID string) ([]db_models.Expense, error)
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *db_models.Expense) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return uuid.Nil, err
	}
	return expense.ID, nil
}

func (r *expenseRepository) ListByTrip(ctx context.Context, tripID string) ([]db_models.Expense, error) {
	var expenses []db_models.Expense
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at DESC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}
