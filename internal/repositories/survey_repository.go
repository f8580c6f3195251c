package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"withme/internal/models/db_models"
)

type SurveyRepository interface {
	ListActiveTriggers(ctx context.Context, eventType string) ([]db_models.SurveyTrigger, error)
	HasResponseSince(ctx context.Context, formID uuid.UUID, sessionID string, since int64) (bool, error)
	CreateResponse(ctx context.Context, response *db_models.SurveyResponse) error
	CreateEvent(ctx context.Context, event *db_models.SurveyEvent) error
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) ListActiveTriggers(ctx context.Context, eventType string) ([]db_models.SurveyTrigger, error) {
	var triggers []db_models.SurveyTrigger
	err := r.db.WithContext(ctx).
		Where("event_type = ? AND active = ?", eventType, true).
		Order("priority DESC").
		Find(&triggers).Error
	if err != nil {
		return nil, err
	}
	return triggers, nil
}

func (r *surveyRepository) HasResponseSince(ctx context.Context, formID uuid.UUID, sessionID string, since int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.SurveyResponse{}).
		Where("form_id = ? AND session_id = ? AND submitted_at >= ?", formID, sessionID, since).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *surveyRepository) CreateResponse(ctx context.Context, response *db_models.SurveyResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *surveyRepository) CreateEvent(ctx context.Context, event *db_models.SurveyEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}
