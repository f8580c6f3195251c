package db_models

import "github.com/google/uuid"

// Place is a stored point of interest. Imported places carry the source
// system name plus its native identifier; the pair is the dedup key.
type Place struct {
	BaseModel
	Name        string
	Description string
	Category    string `gorm:"index"` // one of the fixed taxonomy, see services.DefaultCategoryRules
	Address     string
	Latitude    *float64
	Longitude   *float64
	Rating      *float64
	RatingCount *int
	Source      string     `gorm:"index;uniqueIndex:idx_source_ref"`
	SourceID    string     `gorm:"index;uniqueIndex:idx_source_ref"`
	SuggestedBy *uuid.UUID `gorm:"index"`
}
