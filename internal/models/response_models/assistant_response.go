package response_models

type ChatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

type ItineraryResponse struct {
	Itinerary string `json:"itinerary"`
}

type FolkloreResponse struct {
	Story string `json:"story"`
}

type TribalDetailResponse struct {
	Item   string `json:"item"`
	Detail string `json:"detail"`
}

type ArtResponse struct {
	Image string `json:"image"`
}
