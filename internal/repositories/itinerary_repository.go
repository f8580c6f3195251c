package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"withme/internal/models/db_models"
)

type ItineraryRepository interface {
	Create(ctx context.Context, item *db_models.ItineraryItem) (uuid.UUID, error)
	Update(ctx context.Context, item *db_models.ItineraryItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id string) (*db_models.ItineraryItem, error)
	ListByTrip(ctx context.Context, tripID string) ([]db_models.ItineraryItem, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(ctx context.Context, item *db_models.ItineraryItem) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return uuid.Nil, err
	}
	return item.ID, nil
}

func (r *itineraryRepository) Update(ctx context.Context, item *db_models.ItineraryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(item)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *itineraryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Delete(&db_models.ItineraryItem{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *itineraryRepository) GetByID(ctx context.Context, id string) (*db_models.ItineraryItem, error) {
	var item db_models.ItineraryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itineraryRepository) ListByTrip(ctx context.Context, tripID string) ([]db_models.ItineraryItem, error) {
	var items []db_models.ItineraryItem
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("day_number ASC NULLS LAST, position ASC NULLS LAST").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
