package controllers

import (
	"github.com/gin-gonic/gin"

	"cgtourism/internal/services"
	"cgtourism/pkg/utils"
)

type ContentController struct {
	contentService services.ContentServiceInterface
}

func NewContentController(contentService services.ContentServiceInterface) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

func (cc *ContentController) ListDestinations(c *gin.Context) {
	utils.RespondSuccess(c, cc.contentService.GetDestinations(), "Destinations fetched successfully")
}

func (cc *ContentController) ListTribalItems(c *gin.Context) {
	utils.RespondSuccess(c, cc.contentService.GetTribalItems(), "Tribal items fetched successfully")
}

func (cc *ContentController) ListCities(c *gin.Context) {
	utils.RespondSuccess(c, cc.contentService.GetCities(), "Cities fetched successfully")
}
