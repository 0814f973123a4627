package controllers

import (
	"github.com/gin-gonic/gin"

	"elope/internal/catalog"
	"elope/pkg/utils"
)

type CatalogController struct{}

func NewCatalogController() *CatalogController {
	return &CatalogController{}
}

// ListCities godoc
// @Summary List all catalog cities
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /catalog/cities [get]
func (cc *CatalogController) ListCities(c *gin.Context) {
	utils.RespondSuccess(c, catalog.Cities(), "Cities fetched successfully")
}

// GetCity godoc
// @Summary Get one city by id
// @Tags Catalog
// @Produce json
// @Param id path string true "City id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /catalog/cities/{id} [get]
func (cc *CatalogController) GetCity(c *gin.Context) {
	city, ok := catalog.CityByID(c.Param("id"))
	if !ok {
		utils.HandleServiceError(c, utils.ErrCityNotFound)
		return
	}
	utils.RespondSuccess(c, city, "City fetched successfully")
}
