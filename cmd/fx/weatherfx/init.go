package weatherfx

import (
	"go.uber.org/fx"

	"cgtourism/internal/api/controllers"
	"cgtourism/internal/services"
)

var Module = fx.Provide(
	provideWeatherService, provideWeatherController,
)

func provideWeatherService(contentService services.ContentServiceInterface) services.WeatherServiceInterface {
	return services.NewWeatherService(contentService)
}

func provideWeatherController(weatherService services.WeatherServiceInterface) *controllers.WeatherController {
	return controllers.NewWeatherController(weatherService)
}
