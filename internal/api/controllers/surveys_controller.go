package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"withme/internal/models/request_models"
	"withme/internal/models/response_models"
	"withme/internal/services"
	"withme/pkg/utils"
)

type SurveysController struct {
	triggerService services.SurveyTriggerServiceInterface
}

func NewSurveysController(triggerService services.SurveyTriggerServiceInterface) *SurveysController {
	return &SurveysController{triggerService: triggerService}
}

func (s *SurveysController) HandleEvent(c *gin.Context) {
	var req request_models.SurveyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EventType == "" {
		utils.RespondError(c, http.StatusBadRequest, "EventType is required")
		return
	}

	sessionID := c.GetString("session_id")

	decision, err := s.triggerService.EvaluateEvent(c.Request.Context(), req.EventType, sessionID, req.Payload)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := response_models.TriggerDecisionResponse{Show: false}
	if decision != nil {
		resp.Show = true
		resp.FormID = decision.FormID.String()
		resp.Milestone = decision.Milestone
	}

	utils.RespondSuccess(c, resp, "Event evaluated")
}

func (s *SurveysController) SubmitResponse(c *gin.Context) {
	var req request_models.SurveyResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FormID == "" {
		utils.RespondError(c, http.StatusBadRequest, "FormID is required")
		return
	}

	formID, err := uuid.Parse(req.FormID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid form ID")
		return
	}

	sessionID := c.GetString("session_id")

	if err := s.triggerService.SubmitResponse(c.Request.Context(), formID, sessionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Response recorded")
}
