package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"withme/internal/models/request_models"
	"withme/internal/services"
	"withme/pkg/utils"
)

type SuggestionsController struct {
	suggestService services.SuggestServiceInterface
}

func NewSuggestionsController(suggestService services.SuggestServiceInterface) *SuggestionsController {
	return &SuggestionsController{suggestService: suggestService}
}

func (s *SuggestionsController) Suggest(c *gin.Context) {
	var req request_models.SuggestItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	dayCount := req.DayCount
	if dayCount == 0 {
		dayCount = 3
	}

	itinerary, err := s.suggestService.SuggestItinerary(c.Request.Context(), req.Destination, dayCount, req.Interests)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Suggestions generated successfully")
}
