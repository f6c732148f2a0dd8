package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cgtourism/internal/services"
	"cgtourism/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{
		weatherService: weatherService,
	}
}

// GetWeather godoc
// @Summary Get weather for a city
// @Tags Weather
// @Param city path string true "City name"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/weather/{city} [get]
func (w *WeatherController) GetWeather(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	weather, err := w.weatherService.GetWeatherForCity(city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, weather, "Weather fetched successfully")
}
