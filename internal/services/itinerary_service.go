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

type ItineraryServiceInterface interface {
	AddItem(ctx context.Context, tripID uuid.UUID, req request_models.AddItineraryItemRequest) (uuid.UUID, error)
	ListItems(ctx context.Context, tripID string) ([]response_models.ItineraryItemResponse, error)
	UpdateItem(ctx context.Context, itemID string, req request_models.UpdateItineraryItemRequest) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	GetTravelTimes(ctx context.Context, tripID string) (response_models.TravelTimes, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	tripRepo      repositories.TripRepository
	travelTimes   TravelTimeServiceInterface
	logger        *zap.Logger
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	tripRepo repositories.TripRepository,
	travelTimes TravelTimeServiceInterface,
	logger *zap.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		tripRepo:      tripRepo,
		travelTimes:   travelTimes,
		logger:        logger,
	}
}

func (s *ItineraryService) AddItem(ctx context.Context, tripID uuid.UUID, req request_models.AddItineraryItemRequest) (uuid.UUID, error) {
	trip, err := s.tripRepo.GetByIDWithMembers(ctx, tripID.String())
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return uuid.Nil, utils.ErrTripNotFound
	}

	item := &db_models.ItineraryItem{
		TripID:    tripID,
		Title:     req.Title,
		Notes:     req.Notes,
		DayNumber: req.DayNumber,
		Position:  req.Position,
		StartTime: req.StartTime,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if req.PlaceID != nil {
		placeUUID, err := uuid.Parse(*req.PlaceID)
		if err != nil {
			return uuid.Nil, utils.ErrInvalidInput
		}
		item.PlaceID = &placeUUID
	}

	id, err := s.itineraryRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("creating itinerary item failed", zap.String("trip_id", tripID.String()), zap.Error(err))
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *ItineraryService) ListItems(ctx context.Context, tripID string) ([]response_models.ItineraryItemResponse, error) {
	items, err := s.itineraryRepo.ListByTrip(ctx, tripID)
	if err != nil {
		s.logger.Error("listing itinerary items failed", zap.String("trip_id", tripID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryItemResponse, 0, len(items))
	for _, item := range items {
		resp := response_models.ItineraryItemResponse{
			ID:        item.ID.String(),
			Title:     item.Title,
			Notes:     item.Notes,
			DayNumber: item.DayNumber,
			Position:  item.Position,
			StartTime: item.StartTime,
			Latitude:  item.Latitude,
			Longitude: item.Longitude,
		}
		if item.PlaceID != nil {
			pid := item.PlaceID.String()
			resp.PlaceID = &pid
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *ItineraryService) UpdateItem(ctx context.Context, itemID string, req request_models.UpdateItineraryItemRequest) error {
	item, err := s.itineraryRepo.GetByID(ctx, itemID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if item == nil {
		return utils.ErrItemNotFound
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Notes != nil {
		item.Notes = *req.Notes
	}
	if req.DayNumber != nil {
		item.DayNumber = req.DayNumber
	}
	if req.Position != nil {
		item.Position = req.Position
	}
	if req.StartTime != nil {
		item.StartTime = *req.StartTime
	}
	if req.Latitude != nil {
		item.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		item.Longitude = req.Longitude
	}

	if err := s.itineraryRepo.Update(ctx, item); err != nil {
		s.logger.Error("updating itinerary item failed", zap.String("item_id", itemID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ItineraryService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.itineraryRepo.GetByID(ctx, itemID.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if item == nil {
		return utils.ErrItemNotFound
	}

	if err := s.itineraryRepo.Delete(ctx, itemID); err != nil {
		s.logger.Error("deleting itinerary item failed", zap.String("item_id", itemID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

// GetTravelTimes feeds the trip's items through the estimator.
func (s *ItineraryService) GetTravelTimes(ctx context.Context, tripID string) (response_models.TravelTimes, error) {
	items, err := s.itineraryRepo.ListByTrip(ctx, tripID)
	if err != nil {
		s.logger.Error("loading items for travel times failed", zap.String("trip_id", tripID), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	stops := make([]ItineraryStop, 0, len(items))
	for _, item := range items {
		stops = append(stops, ItineraryStop{
			ID:        item.ID.String(),
			Latitude:  item.Latitude,
			Longitude: item.Longitude,
			DayNumber: item.DayNumber,
			Position:  item.Position,
			StartTime: item.StartTime,
		})
	}

	return s.travelTimes.EstimateTravelTimes(ctx, stops)
}
