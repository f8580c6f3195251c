package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"withme/internal/models/db_models"
)

type TripRepository interface {
	Create(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error)
	Update(ctx context.Context, trip *db_models.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByIDWithMembers(ctx context.Context, id string) (*db_models.Trip, error)
	ListByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Trip, error)
	AddMember(ctx context.Context, member *db_models.TripMember) error
	HasMember(ctx context.Context, tripID, userID uuid.UUID) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Create(ctx context.Context, trip *db_models.Trip) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return uuid.Nil, err
	}
	return trip.ID, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(trip)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Trip{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// Read helpers return a default value plus nil error when no rows match.

func (r *tripRepository) GetByIDWithMembers(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).
		Preload("Members").
		First(&trip, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Joins("JOIN trip_members ON trip_members.trip_id = trips.id").
		Where("trip_members.user_id = ? OR trips.created_by = ?", userID, userID).
		Distinct().
		Offset(offset).
		Limit(pageSize).
		Order("trips.created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) AddMember(ctx context.Context, member *db_models.TripMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *tripRepository) HasMember(ctx context.Context, tripID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.TripMember{}).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
