package controllers

import (
	"github.com/gin-gonic/gin"

	"elope/internal/services"
	"elope/pkg/utils"
)

type ExploreController struct {
	exploreService services.ExploreServiceInterface
}

func NewExploreController(exploreService services.ExploreServiceInterface) *ExploreController {
	return &ExploreController{
		exploreService: exploreService,
	}
}

// Explore godoc
// @Summary Unlocked countries and browsable cities for the caller
// @Description An explicit ?country= selection is kept while it stays
// @Description unlocked; otherwise the first unlocked country is selected.
// @Tags Explore
// @Produce json
// @Param country query string false "Explicitly selected country code"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /explore [get]
func (e *ExploreController) Explore(c *gin.Context) {
	view, err := e.exploreService.Explore(c.Request.Context(), c.GetString("user_id"), c.Query("country"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "Explore view fetched successfully")
}
