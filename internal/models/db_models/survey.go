package db_models

import "github.com/google/uuid"

// SurveyTrigger wires an application event to a survey form. When several
// active triggers share an event type the highest priority wins.
type SurveyTrigger struct {
	BaseModel
	EventType       string    `gorm:"index"`
	FormID          uuid.UUID `gorm:"index"`
	CooldownMinutes int       `gorm:"default:0"`
	Active          bool      `gorm:"default:true;index"`
	Priority        int       `gorm:"default:0"`
}

// SurveyResponse records one submission; only (FormID, SessionID,
// SubmittedAt) matter for cooldown checks.
type SurveyResponse struct {
	BaseModel
	FormID      uuid.UUID `gorm:"index:idx_form_session"`
	SessionID   string    `gorm:"index:idx_form_session"`
	SubmittedAt int64     `gorm:"index"` // unix seconds
}

// SurveyEvent is the audit trail: every inbound event is written, whether
// or not a prompt was shown for it.
type SurveyEvent struct {
	BaseModel
	EventType string `gorm:"index"`
	SessionID string `gorm:"index"`
	Payload   string `gorm:"type:jsonb;default:'{}'"`
	Triggered bool
}
