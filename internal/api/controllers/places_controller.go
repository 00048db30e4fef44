package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type PlacesController struct {
	placesService services.PlacesServiceInterface
}

func NewPlacesController(placesService services.PlacesServiceInterface) *PlacesController {
	return &PlacesController{
		placesService: placesService,
	}
}

// FetchPlaces godoc
// @Summary Fetch places around a destination
// @Description Geocode the destination (and optional source), fetch nearby points of interest and store them under a new session
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.FetchPlacesRequest true "Destination, optional source, radius and category filter"
// @Success 200 {object} response_models.FetchPlacesResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /places/fetch [post]
func (p *PlacesController) FetchPlaces(c *gin.Context) {
	var req request_models.FetchPlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination is required")
		return
	}

	resp, err := p.placesService.FetchPlaces(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Points of interest fetched successfully")
}

// GetPlaces godoc
// @Summary List the fetched places for a session
// @Tags Places
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {array} response_models.Place
// @Failure 404 {object} utils.APIResponse
// @Router /places/{sessionId} [get]
func (p *PlacesController) GetPlaces(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	places, err := p.placesService.GetPlaces(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// ExportPlaces godoc
// @Summary Download the place table as CSV
// @Tags Places
// @Produce text/csv
// @Param sessionId path string true "Session ID"
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} utils.APIResponse
// @Router /places/{sessionId}/export [get]
func (p *PlacesController) ExportPlaces(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	data, err := p.placesService.ExportCSV(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trip_recommendations.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
