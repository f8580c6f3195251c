package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"withme/internal/models/request_models"
	"withme/internal/services"
	"withme/pkg/utils"
)

type PlacesController struct {
	importService services.PlacesImportServiceInterface
}

func NewPlacesController(importService services.PlacesImportServiceInterface) *PlacesController {
	return &PlacesController{importService: importService}
}

func (p *PlacesController) ImportList(c *gin.Context) {
	var req request_models.ImportListRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		utils.RespondError(c, http.StatusBadRequest, "URL is required")
		return
	}

	var suggestedBy *uuid.UUID
	if req.SuggestedBy != "" {
		id, err := uuid.Parse(req.SuggestedBy)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid suggested_by")
			return
		}
		suggestedBy = &id
	}

	result, err := p.importService.ImportSharedList(c.Request.Context(), req.URL, suggestedBy)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "List imported successfully")
}

func (p *PlacesController) ListPlaces(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	places, err := p.importService.ListPlaces(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}
