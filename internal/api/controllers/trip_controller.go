package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"elope/internal/models/request_models"
	"elope/internal/quiz"
	"elope/internal/services"
	"elope/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// CreateTrip godoc
// @Summary Activate a trip directly from a complete payload
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	state := quiz.FlowState{
		Step:      quiz.LastStep,
		CityID:    req.CityID,
		StartDate: startDate,
		EndDate:   endDate,
		Answers:   req.Quiz,
	}

	saved, err := t.tripService.SaveTrip(c.Request.Context(), c.GetString("user_id"), state)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Trip activated, browsing unlocked for "+saved.CountryName)
}

// ListTrips godoc
// @Summary List the caller's completed trips
// @Tags Trips
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	trips, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}
