package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"cgtourism/pkg/ai"
	"cgtourism/pkg/utils"
)

const chatSystemInstruction = `You are a friendly and helpful tour guide for Chhattisgarh, India.
Your goal is to assist tourists. Answer questions about destinations, culture, food, travel, and local tips.
Keep your answers concise and engaging for a mobile chat interface.`

type AssistantServiceInterface interface {
	Chat(ctx context.Context, sessionID, message string) (string, error)
	ResetChat(sessionID string)
	GenerateItinerary(ctx context.Context, days int, interests []string, budget string) (string, error)
	GenerateFolklore(ctx context.Context) (string, error)
	GetTribalDetail(ctx context.Context, item string) (string, error)
	GenerateArt(ctx context.Context, prompt string) (string, error)
}

// AssistantService owns one chat session per caller-supplied session id.
// Sessions live in memory only; a failed exchange drops the session so the
// next message starts a fresh conversation.
type AssistantService struct {
	aiClient ai.Client
	images   ai.ImageGenerator

	mu       sync.Mutex
	sessions map[string]ai.ChatSession
}

func NewAssistantService(aiClient ai.Client, images ai.ImageGenerator) AssistantServiceInterface {
	return &AssistantService{
		aiClient: aiClient,
		images:   images,
		sessions: make(map[string]ai.ChatSession),
	}
}

func (s *AssistantService) Chat(ctx context.Context, sessionID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("%w: message", utils.ErrMissingField)
	}

	session := s.getOrCreateSession(sessionID)
	reply, err := session.Send(ctx, message)
	if err != nil {
		// Reset on error in case the session is bad.
		s.ResetChat(sessionID)
		return "", fmt.Errorf("%w: %v", utils.ErrAIUnavailable, err)
	}
	return reply, nil
}

func (s *AssistantService) ResetChat(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *AssistantService) GenerateItinerary(ctx context.Context, days int, interests []string, budget string) (string, error) {
	if days < 1 || days > 14 {
		return "", fmt.Errorf("%w: days must be between 1 and 14", utils.ErrInvalidInput)
	}
	interests = NormalizeTags(interests)
	if len(interests) == 0 {
		return "", fmt.Errorf("%w: interests", utils.ErrMissingField)
	}
	if strings.TrimSpace(budget) == "" {
		return "", fmt.Errorf("%w: budget", utils.ErrMissingField)
	}

	prompt := fmt.Sprintf(`Create a detailed, day-by-day travel itinerary for a %d-day trip to Chhattisgarh, India.
The traveler is interested in: %s.
Their budget is %s.
For each day, suggest activities, places to visit, and potential food experiences.
Format the output as clean markdown, with "##" for day titles (e.g., "## Day 1: Arrival in Raipur") and "###" for main activities. Use bullet points for details.
Make it sound exciting and welcoming for a tourist.`, days, strings.Join(interests, ", "), budget)

	return s.generate(ctx, prompt)
}

func (s *AssistantService) GenerateFolklore(ctx context.Context) (string, error) {
	prompt := `Tell me a short, captivating local legend or folktale from the tribal regions of Chhattisgarh, India.
The story should be suitable for a tourist audience.
Format the response as clean markdown, with a "###" for the story's title.`

	return s.generate(ctx, prompt)
}

func (s *AssistantService) GetTribalDetail(ctx context.Context, item string) (string, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return "", fmt.Errorf("%w: item", utils.ErrMissingField)
	}

	prompt := fmt.Sprintf(`You are a cultural expert for a tourism app.
In a brief and engaging manner (2-3 paragraphs), explain "%s" of Chhattisgarh, India.
Describe what it is, its cultural significance, and what makes it unique.
Make it interesting for a tourist who knows nothing about it.
Format the response as clean markdown. Do not include a title.`, item)

	return s.generate(ctx, prompt)
}

func (s *AssistantService) GenerateArt(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt", utils.ErrMissingField)
	}
	if s.images == nil {
		return "", fmt.Errorf("%w: no image provider configured", utils.ErrAIUnavailable)
	}

	image, err := s.images.GenerateImage(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrAIUnavailable, err)
	}
	return image, nil
}

func (s *AssistantService) generate(ctx context.Context, prompt string) (string, error) {
	text, err := s.aiClient.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrAIUnavailable, err)
	}
	return text, nil
}

func (s *AssistantService) getOrCreateSession(sessionID string) ai.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		session = s.aiClient.NewChatSession(chatSystemInstruction)
		s.sessions[sessionID] = session
	}
	return session
}
