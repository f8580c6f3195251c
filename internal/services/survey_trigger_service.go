package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"withme/internal/models/db_models"
	"withme/internal/repositories"
	"withme/pkg/utils"
)

// TriggerPolicy decides what happens when the highest-priority trigger is
// suppressed by its cooldown.
type TriggerPolicy string

const (
	// PolicyStrictTopOnly evaluates only the highest-priority trigger;
	// lower-priority matches are ignored even when the top one is cooling
	// down. This mirrors the product's one-survey-per-event behavior.
	PolicyStrictTopOnly TriggerPolicy = "strict-top-only"

	// PolicyFallThroughOnCooldown walks down the priority list until a
	// trigger passes its cooldown check.
	PolicyFallThroughOnCooldown TriggerPolicy = "fall-through-on-cooldown"
)

// TriggerDecision is a positive evaluation result.
type TriggerDecision struct {
	FormID    uuid.UUID
	Milestone *string
}

type SurveyTriggerServiceInterface interface {
	EvaluateEvent(ctx context.Context, eventType, sessionID string, payload map[string]interface{}) (*TriggerDecision, error)
	SubmitResponse(ctx context.Context, formID uuid.UUID, sessionID string) error
}

type SurveyTriggerService struct {
	surveyRepo repositories.SurveyRepository
	policy     TriggerPolicy
	now        func() time.Time
	logger     *zap.Logger
}

func NewSurveyTriggerService(surveyRepo repositories.SurveyRepository, policy TriggerPolicy, logger *zap.Logger) SurveyTriggerServiceInterface {
	if policy == "" {
		policy = PolicyStrictTopOnly
	}
	return &SurveyTriggerService{
		surveyRepo: surveyRepo,
		policy:     policy,
		now:        time.Now,
		logger:     logger,
	}
}

// EvaluateEvent records the event and decides whether to surface a survey
// prompt. A nil decision with nil error means "no trigger".
func (s *SurveyTriggerService) EvaluateEvent(ctx context.Context, eventType, sessionID string, payload map[string]interface{}) (*TriggerDecision, error) {
	triggers, err := s.surveyRepo.ListActiveTriggers(ctx, eventType)
	if err != nil {
		s.logger.Error("listing survey triggers failed", zap.String("event_type", eventType), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	decision, err := s.pickTrigger(ctx, triggers, sessionID, payload)
	if err != nil {
		return nil, err
	}

	s.recordEvent(ctx, eventType, sessionID, payload, decision != nil)

	return decision, nil
}

func (s *SurveyTriggerService) pickTrigger(ctx context.Context, triggers []db_models.SurveyTrigger, sessionID string, payload map[string]interface{}) (*TriggerDecision, error) {
	for _, trigger := range triggers {
		suppressed, err := s.inCooldown(ctx, trigger, sessionID)
		if err != nil {
			return nil, err
		}
		if suppressed {
			if s.policy == PolicyStrictTopOnly {
				return nil, nil
			}
			continue
		}
		return &TriggerDecision{
			FormID:    trigger.FormID,
			Milestone: milestoneFromPayload(payload),
		}, nil
	}
	return nil, nil
}

func (s *SurveyTriggerService) inCooldown(ctx context.Context, trigger db_models.SurveyTrigger, sessionID string) (bool, error) {
	if trigger.CooldownMinutes <= 0 {
		return false, nil
	}
	since := s.now().Add(-time.Duration(trigger.CooldownMinutes) * time.Minute).Unix()
	recent, err := s.surveyRepo.HasResponseSince(ctx, trigger.FormID, sessionID, since)
	if err != nil {
		s.logger.Error("cooldown check failed", zap.String("form_id", trigger.FormID.String()), zap.Error(err))
		return false, utils.ErrDatabaseError
	}
	return recent, nil
}

// The event is written even when the prompt is suppressed; a failed write
// is logged and does not change the decision.
func (s *SurveyTriggerService) recordEvent(ctx context.Context, eventType, sessionID string, payload map[string]interface{}, triggered bool) {
	raw := "{}"
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			raw = string(b)
		}
	}
	err := s.surveyRepo.CreateEvent(ctx, &db_models.SurveyEvent{
		EventType: eventType,
		SessionID: sessionID,
		Payload:   raw,
		Triggered: triggered,
	})
	if err != nil {
		s.logger.Warn("recording survey event failed", zap.String("event_type", eventType), zap.Error(err))
	}
}

func milestoneFromPayload(payload map[string]interface{}) *string {
	if payload == nil {
		return nil
	}
	if v, ok := payload["milestone"].(string); ok && v != "" {
		return &v
	}
	return nil
}

func (s *SurveyTriggerService) SubmitResponse(ctx context.Context, formID uuid.UUID, sessionID string) error {
	err := s.surveyRepo.CreateResponse(ctx, &db_models.SurveyResponse{
		FormID:      formID,
		SessionID:   sessionID,
		SubmittedAt: s.now().Unix(),
	})
	if err != nil {
		s.logger.Error("recording survey response failed", zap.String("form_id", formID.String()), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}
