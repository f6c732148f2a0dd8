package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cgtourism/internal/models/request_models"
	"cgtourism/internal/models/response_models"
	"cgtourism/internal/services"
	"cgtourism/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// Chat godoc
// @Summary Chat with the tour guide assistant
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/assistant/chat [post]
func (a *AssistantController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reply, err := a.assistantService.Chat(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ChatResponse{
		SessionID: req.SessionID,
		Reply:     reply,
	}, "Chat reply generated")
}

// ResetChat godoc
// @Summary Reset a chat session
// @Tags Assistant
// @Param sessionId path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Router /api/assistant/chat/{sessionId} [delete]
func (a *AssistantController) ResetChat(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	a.assistantService.ResetChat(sessionID)
	utils.RespondSuccess(c, nil, "Chat session reset")
}

// GenerateItinerary godoc
// @Summary Generate a travel itinerary
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Itinerary parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/assistant/itinerary [post]
func (a *AssistantController) GenerateItinerary(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	itinerary, err := a.assistantService.GenerateItinerary(c.Request.Context(), req.Days, req.Interests, req.Budget)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ItineraryResponse{Itinerary: itinerary}, "Itinerary generated")
}

// GenerateFolklore godoc
// @Summary Generate a local folktale
// @Tags Assistant
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/assistant/folklore [post]
func (a *AssistantController) GenerateFolklore(c *gin.Context) {
	story, err := a.assistantService.GenerateFolklore(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.FolkloreResponse{Story: story}, "Folklore generated")
}

// GetTribalDetail godoc
// @Summary Explain a tribal cultural item
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.TribalDetailRequest true "Cultural item"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/assistant/tribal-detail [post]
func (a *AssistantController) GetTribalDetail(c *gin.Context) {
	var req request_models.TribalDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	detail, err := a.assistantService.GetTribalDetail(c.Request.Context(), req.Item)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TribalDetailResponse{
		Item:   req.Item,
		Detail: detail,
	}, "Detail generated")
}

// GenerateArt godoc
// @Summary Generate AI art
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.ArtRequest true "Art prompt"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /api/assistant/art [post]
func (a *AssistantController) GenerateArt(c *gin.Context) {
	var req request_models.ArtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	image, err := a.assistantService.GenerateArt(c.Request.Context(), req.Prompt)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ArtResponse{Image: image}, "Art generated")
}
