package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"withme/internal/models/db_models"
	"withme/internal/models/request_models"
	"withme/internal/models/response_models"
	"withme/internal/repositories"
	"withme/pkg/utils"
)

type ExpenseServiceInterface interface {
	AddExpense(ctx context.Context, tripID uuid.UUID, req request_models.AddExpenseRequest) (uuid.UUID, error)
	ListExpenses(ctx context.Context, tripID string) ([]response_models.ExpenseResponse, error)
	Summary(ctx context.Context, tripID string) (*response_models.ExpenseSummaryResponse, error)
}

type ExpenseService struct {
	expenseRepo repositories.ExpenseRepository
	tripRepo    repositories.TripRepository
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo repositories.ExpenseRepository, tripRepo repositories.TripRepository, logger *zap.Logger) ExpenseServiceInterface {
	return &ExpenseService{expenseRepo: expenseRepo, tripRepo: tripRepo, logger: logger}
}

func (s *ExpenseService) AddExpense(ctx context.Context, tripID uuid.UUID, req request_models.AddExpenseRequest) (uuid.UUID, error) {
	trip, err := s.tripRepo.GetByIDWithMembers(ctx, tripID.String())
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return uuid.Nil, utils.ErrTripNotFound
	}

	paidBy, err := uuid.Parse(req.PaidBy)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidInput
	}
	if req.AmountMinor <= 0 {
		return uuid.Nil, utils.ErrInvalidInput
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	id, err := s.expenseRepo.Create(ctx, &db_models.Expense{
		TripID:      tripID,
		PaidBy:      paidBy,
		Title:       req.Title,
		Category:    req.Category,
		AmountMinor: req.AmountMinor,
		Currency:    currency,
		SpentAt:     req.SpentAt,
	})
	if err != nil {
		s.logger.Error("creating expense failed", zap.String("trip_id", tripID.String()), zap.Error(err))
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, tripID string) ([]response_models.ExpenseResponse, error) {
	rows, err := s.expenseRepo.ListByTrip(ctx, tripID)
	if err != nil {
		s.logger.Error("listing expenses failed", zap.String("trip_id", tripID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ExpenseResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.ExpenseResponse{
			ID:          row.ID.String(),
			PaidBy:      row.PaidBy.String(),
			Title:       row.Title,
			Category:    row.Category,
			AmountMinor: row.AmountMinor,
			Currency:    row.Currency,
			SpentAt:     row.SpentAt,
		})
	}
	return out, nil
}

// Summary totals a trip's expenses overall and per payer. Mixed currencies
// are summed as-is; the dominant currency is reported.
func (s *ExpenseService) Summary(ctx context.Context, tripID string) (*response_models.ExpenseSummaryResponse, error) {
	rows, err := s.expenseRepo.ListByTrip(ctx, tripID)
	if err != nil {
		s.logger.Error("summarizing expenses failed", zap.String("trip_id", tripID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := &response_models.ExpenseSummaryResponse{ByPayer: make(map[string]int64)}
	currencyCounts := make(map[string]int)
	for _, row := range rows {
		out.TotalMinor += row.AmountMinor
		out.ByPayer[row.PaidBy.String()] += row.AmountMinor
		currencyCounts[row.Currency]++
	}
	best := 0
	for currency, n := range currencyCounts {
		if n > best {
			best = n
			out.Currency = currency
		}
	}
	return out, nil
}
