package db_models

import "github.com/google/uuid"

// ItineraryItem is one stop on a trip. Day, position and coordinates are
// all optional: items without a day live in the unscheduled bucket, items
// without coordinates are skipped by the travel-time estimator.
type ItineraryItem struct {
	BaseModel
	TripID    uuid.UUID `gorm:"index"`
	Title     string
	Notes     string
	DayNumber *int
	Position  *int
	StartTime string // "09:00", empty when unset
	Latitude  *float64
	Longitude *float64
	PlaceID   *uuid.UUID `gorm:"index"`

	Place *Place `gorm:"foreignKey:PlaceID"`
}
