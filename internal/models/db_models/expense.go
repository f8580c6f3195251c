package db_models

import "github.com/google/uuid"

type Expense struct {
	BaseModel
	TripID      uuid.UUID `gorm:"index"`
	PaidBy      uuid.UUID `gorm:"index"`
	Title       string
	Category    string
	AmountMinor int64  // 1250 = $12.50
	Currency    string `gorm:"size:3"`
	SpentAt     *int64 // unix seconds, nil when unknown
}
