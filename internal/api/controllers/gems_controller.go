package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cgtourism/internal/models/request_models"
	"cgtourism/internal/services"
	"cgtourism/pkg/utils"
)

type GemsController struct {
	gemService services.GemServiceInterface
}

func NewGemsController(gemService services.GemServiceInterface) *GemsController {
	return &GemsController{
		gemService: gemService,
	}
}

// ListGems godoc
// @Summary List hidden gems
// @Description Get all community-submitted hidden gems, newest first
// @Tags Gems
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/gems [get]
func (g *GemsController) ListGems(c *gin.Context) {
	gems, err := g.gemService.ListGems(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gems, "Gems fetched successfully")
}

// CreateGem godoc
// @Summary Submit a hidden gem
// @Description Create a new hidden gem; AI tags and insight are added on a best-effort basis
// @Tags Gems
// @Accept json
// @Produce json
// @Param request body request_models.CreateGemRequest true "Gem payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Router /api/gems [post]
func (g *GemsController) CreateGem(c *gin.Context) {
	var req request_models.CreateGemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	gem, err := g.gemService.CreateGem(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gem, "Gem submitted successfully")
}
