package request_models

type ChatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

type ItineraryRequest struct {
	Days      int      `json:"days"`
	Interests []string `json:"interests"`
	Budget    string   `json:"budget"`
}

type TribalDetailRequest struct {
	Item string `json:"item" binding:"required"`
}

type ArtRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}
