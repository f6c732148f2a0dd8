package services

import (
	"strings"

	"cgtourism/internal/models/response_models"
	"cgtourism/pkg/utils"
)

type WeatherServiceInterface interface {
	GetWeatherForCity(city string) (*response_models.WeatherInfo, error)
}

// WeatherService returns simulated conditions. Each city maps to a fixed
// condition by its index in the canonical city list, so responses are
// stable between requests.
type WeatherService struct {
	contentService ContentServiceInterface
}

func NewWeatherService(contentService ContentServiceInterface) WeatherServiceInterface {
	return &WeatherService{contentService: contentService}
}

var weatherConditions = []response_models.WeatherInfo{
	{Temperature: 32, Condition: "Sunny", Description: "Clear skies and bright sun. Perfect for sightseeing!"},
	{Temperature: 28, Condition: "Cloudy", Description: "Partly cloudy with pleasant weather."},
	{Temperature: 25, Condition: "Rainy", Description: "Light showers expected. Don't forget your umbrella!"},
	{Temperature: 29, Condition: "Sunny", Description: "Hot and sunny day."},
	{Temperature: 22, Condition: "Rainy", Description: "Heavy rainfall warning. Best to stay indoors."},
	{Temperature: 26, Condition: "Cloudy", Description: "Overcast skies but dry."},
	{Temperature: 24, Condition: "Stormy", Description: "Thunderstorms expected in the afternoon."},
}

func (s *WeatherService) GetWeatherForCity(city string) (*response_models.WeatherInfo, error) {
	cityIndex := -1
	for i, known := range s.contentService.GetCities() {
		if strings.EqualFold(known, city) {
			cityIndex = i
			city = known
			break
		}
	}
	if cityIndex < 0 {
		return nil, utils.ErrCityNotFound
	}

	info := weatherConditions[cityIndex%len(weatherConditions)]
	info.City = city
	return &info, nil
}
