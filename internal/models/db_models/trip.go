package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	BaseModel
	Name        string
	Destination string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	CreatedBy   uuid.UUID `gorm:"index"`
	IsPublic    bool      `gorm:"default:false"`

	Members  []TripMember
	Items    []ItineraryItem
	Expenses []Expense
}

type TripMember struct {
	BaseModel
	TripID uuid.UUID `gorm:"index;uniqueIndex:idx_trip_user"`
	UserID uuid.UUID `gorm:"index;uniqueIndex:idx_trip_user"`
	Role   string    `gorm:"default:'member'"` // "owner", "editor", "member"
}
