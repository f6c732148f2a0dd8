package request_models

type CreateGemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	ImageURL    string   `json:"imageUrl"`
	SubmittedBy string   `json:"submittedBy"`
	Tags        []string `json:"tags"`
}
