package services

import (
	"cgtourism/internal/models/response_models"
)

type ContentServiceInterface interface {
	GetDestinations() []response_models.Destination
	GetTribalItems() []response_models.TribalItem
	GetCities() []string
}

// ContentService serves the static marketing catalog shown on the landing
// page. The data changes with releases, not at runtime, so it lives here
// rather than in the database.
type ContentService struct{}

func NewContentService() ContentServiceInterface {
	return &ContentService{}
}

func (s *ContentService) GetDestinations() []response_models.Destination {
	return destinations
}

func (s *ContentService) GetTribalItems() []response_models.TribalItem {
	return tribalItems
}

func (s *ContentService) GetCities() []string {
	return chhattisgarhCities
}

var destinations = []response_models.Destination{
	{
		Name:        "Chitrakote Falls",
		Description: `Known as the "Niagara of India," this majestic waterfall offers breathtaking views, especially during monsoon.`,
		Image:       "/images/destinations/chitrakote.jpg",
		Lat:         19.21,
		Lon:         81.69,
	},
	{
		Name:        "Bastar",
		Description: "Explore the heart of tribal Chhattisgarh, rich in unique culture, traditional art, and vibrant local markets.",
		Image:       "/images/destinations/bastar.jpg",
		Lat:         19.07,
		Lon:         82.03,
	},
	{
		Name:        "Kanger Valley National Park",
		Description: "Home to stunning limestone caves, waterfalls, and diverse wildlife. A paradise for nature lovers and adventurers.",
		Image:       "/images/destinations/kanger.jpg",
		Lat:         18.87,
		Lon:         81.93,
	},
	{
		Name:        "Mainpat",
		Description: `Often called the "Shimla of Chhattisgarh," Mainpat is a charming hill station with Tibetan refugee settlements.`,
		Image:       "/images/destinations/mainpat.jpg",
		Lat:         22.85,
		Lon:         83.27,
	},
}

var tribalItems = []response_models.TribalItem{
	{
		Name:        "Dhokra Art",
		Description: "A non-ferrous metal casting using the lost-wax technique. This ancient art form creates stunning figurines.",
		Image:       "/images/tribal/dhokra.jpg",
	},
	{
		Name:        "Gond Painting",
		Description: "Vibrant paintings characterized by a sense of movement, dots, and lines, depicting nature and folklore.",
		Image:       "/images/tribal/gond.jpg",
	},
	{
		Name:        "Bastar Dussehra",
		Description: "A unique 75-day festival, one of the longest in the world, celebrating Devi Danteshwari with unique rituals.",
		Image:       "/images/tribal/dussehra.jpg",
	},
	{
		Name:        "Tribal Cuisine",
		Description: "Experience authentic flavors with dishes like red ant chutney (Chaprah), bamboo shoot curry, and Mahua liquor.",
		Image:       "/images/tribal/cuisine.jpg",
	},
}

var chhattisgarhCities = []string{
	"Raipur",
	"Bhilai",
	"Bilaspur",
	"Korba",
	"Durg",
	"Raigarh",
	"Rajnandgaon",
	"Jagdalpur",
	"Ambikapur",
	"Chirmiri",
	"Mahasamund",
	"Dhamtari",
	"Kanker",
	"Kawardha",
}
