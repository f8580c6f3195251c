package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"withme/internal/models/db_models"
	"withme/internal/models/request_models"
	"withme/internal/models/response_models"
	"withme/internal/repositories"
	"withme/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, createdBy uuid.UUID, req request_models.CreateTripRequest) (uuid.UUID, error)
	GetTrip(ctx context.Context, id string) (*response_models.TripDetailResponse, error)
	ListTripsByUser(ctx context.Context, userID string, page, pageSize int) ([]response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, id string, req request_models.UpdateTripRequest) error
	DeleteTrip(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, tripID uuid.UUID, req request_models.AddMemberRequest) error
}

type TripService struct {
	tripRepo repositories.TripRepository
	logger   *zap.Logger
}

func NewTripService(tripRepo repositories.TripRepository, logger *zap.Logger) TripServiceInterface {
	return &TripService{tripRepo: tripRepo, logger: logger}
}

func (s *TripService) CreateTrip(ctx context.Context, createdBy uuid.UUID, req request_models.CreateTripRequest) (uuid.UUID, error) {
	trip := &db_models.Trip{
		Name:        req.Name,
		Destination: req.Destination,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedBy:   createdBy,
		IsPublic:    req.IsPublic,
	}

	id, err := s.tripRepo.Create(ctx, trip)
	if err != nil {
		s.logger.Error("creating trip failed", zap.Error(err))
		return uuid.Nil, utils.ErrDatabaseError
	}

	if err := s.tripRepo.AddMember(ctx, &db_models.TripMember{
		TripID: id,
		UserID: createdBy,
		Role:   "owner",
	}); err != nil {
		s.logger.Warn("adding owner membership failed", zap.String("trip_id", id.String()), zap.Error(err))
	}

	return id, nil
}

func (s *TripService) GetTrip(ctx context.Context, id string) (*response_models.TripDetailResponse, error) {
	trip, err := s.tripRepo.GetByIDWithMembers(ctx, id)
	if err != nil {
		s.logger.Error("fetching trip failed", zap.String("trip_id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	out := &response_models.TripDetailResponse{
		TripResponse: tripToResponse(trip),
		Members:      make([]response_models.TripMemberResponse, 0, len(trip.Members)),
	}
	for _, m := range trip.Members {
		out.Members = append(out.Members, response_models.TripMemberResponse{
			UserID: m.UserID.String(),
			Role:   m.Role,
		})
	}
	return out, nil
}

func (s *TripService) ListTripsByUser(ctx context.Context, userID string, page, pageSize int) ([]response_models.TripResponse, error) {
	trips, err := s.tripRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		s.logger.Error("listing trips failed", zap.String("user_id", userID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, tripToResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) UpdateTrip(ctx context.Context, id string, req request_models.UpdateTripRequest) error {
	trip, err := s.tripRepo.GetByIDWithMembers(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}

	if req.Name != nil {
		trip.Name = *req.Name
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.StartDate != nil {
		trip.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = *req.EndDate
	}
	if req.IsPublic != nil {
		trip.IsPublic = *req.IsPublic
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		s.logger.Error("updating trip failed", zap.String("trip_id", id), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	trip, err := s.tripRepo.GetByIDWithMembers(ctx, id.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}

	if err := s.tripRepo.Delete(ctx, id); err != nil {
		s.logger.Error("deleting trip failed", zap.String("trip_id", id.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) AddMember(ctx context.Context, tripID uuid.UUID, req request_models.AddMemberRequest) error {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	exists, err := s.tripRepo.HasMember(ctx, tripID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if exists {
		return utils.ErrMemberExists
	}

	role := req.Role
	if role == "" {
		role = "member"
	}
	if err := s.tripRepo.AddMember(ctx, &db_models.TripMember{
		TripID: tripID,
		UserID: userID,
		Role:   role,
	}); err != nil {
		s.logger.Error("adding member failed", zap.String("trip_id", tripID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func tripToResponse(trip *db_models.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:          trip.ID.String(),
		Name:        trip.Name,
		Destination: trip.Destination,
		Description: trip.Description,
		StartDate:   formatDate(trip.StartDate),
		EndDate:     formatDate(trip.EndDate),
		IsPublic:    trip.IsPublic,
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
