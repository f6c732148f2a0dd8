package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgtourism/pkg/ai"
	"cgtourism/pkg/utils"
)

type fakeChatSession struct {
	replies  []string
	err      error
	received []string
}

func (s *fakeChatSession) Send(_ context.Context, message string) (string, error) {
	s.received = append(s.received, message)
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "ok", nil
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

type fakeAIClient struct {
	text         string
	textErr      error
	session      *fakeChatSession
	sessionCount int
}

func (c *fakeAIClient) EnrichGem(context.Context, string, string) (*ai.Enrichment, error) {
	return nil, nil
}

func (c *fakeAIClient) GenerateText(context.Context, string) (string, error) {
	return c.text, c.textErr
}

func (c *fakeAIClient) NewChatSession(string) ai.ChatSession {
	c.sessionCount++
	if c.session != nil {
		return c.session
	}
	return &fakeChatSession{}
}

func (c *fakeAIClient) Close() error { return nil }

type fakeImageGenerator struct {
	image string
	err   error
}

func (g *fakeImageGenerator) GenerateImage(context.Context, string) (string, error) {
	return g.image, g.err
}

func TestChatReusesSessionPerID(t *testing.T) {
	aiClient := &fakeAIClient{}
	service := NewAssistantService(aiClient, nil)

	_, err := service.Chat(context.Background(), "tab-1", "hello")
	require.NoError(t, err)
	_, err = service.Chat(context.Background(), "tab-1", "more")
	require.NoError(t, err)

	assert.Equal(t, 1, aiClient.sessionCount, "same session id keeps one conversation")

	_, err = service.Chat(context.Background(), "tab-2", "hello")
	require.NoError(t, err)
	assert.Equal(t, 2, aiClient.sessionCount)
}

func TestChatDropsSessionOnFailure(t *testing.T) {
	session := &fakeChatSession{err: assert.AnError}
	aiClient := &fakeAIClient{session: session}
	service := NewAssistantService(aiClient, nil)

	_, err := service.Chat(context.Background(), "tab-1", "hello")
	require.ErrorIs(t, err, utils.ErrAIUnavailable)

	session.err = nil
	_, err = service.Chat(context.Background(), "tab-1", "retry")
	require.NoError(t, err)
	assert.Equal(t, 2, aiClient.sessionCount, "failed session is replaced")
}

func TestChatRequiresMessage(t *testing.T) {
	service := NewAssistantService(&fakeAIClient{}, nil)

	_, err := service.Chat(context.Background(), "tab-1", "   ")
	require.ErrorIs(t, err, utils.ErrMissingField)
}

func TestResetChatStartsFresh(t *testing.T) {
	aiClient := &fakeAIClient{}
	service := NewAssistantService(aiClient, nil)

	_, err := service.Chat(context.Background(), "tab-1", "hello")
	require.NoError(t, err)

	service.ResetChat("tab-1")

	_, err = service.Chat(context.Background(), "tab-1", "hello again")
	require.NoError(t, err)
	assert.Equal(t, 2, aiClient.sessionCount)
}

func TestGenerateItineraryValidation(t *testing.T) {
	service := NewAssistantService(&fakeAIClient{text: "## Day 1"}, nil)

	_, err := service.GenerateItinerary(context.Background(), 0, []string{"nature"}, "low")
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = service.GenerateItinerary(context.Background(), 15, []string{"nature"}, "low")
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = service.GenerateItinerary(context.Background(), 3, nil, "low")
	require.ErrorIs(t, err, utils.ErrMissingField)

	_, err = service.GenerateItinerary(context.Background(), 3, []string{"nature"}, " ")
	require.ErrorIs(t, err, utils.ErrMissingField)

	itinerary, err := service.GenerateItinerary(context.Background(), 3, []string{"nature", "food"}, "moderate")
	require.NoError(t, err)
	assert.Equal(t, "## Day 1", itinerary)
}

func TestGenerateFolkloreWrapsAIFailure(t *testing.T) {
	service := NewAssistantService(&fakeAIClient{textErr: assert.AnError}, nil)

	_, err := service.GenerateFolklore(context.Background())
	require.ErrorIs(t, err, utils.ErrAIUnavailable)
}

func TestGetTribalDetailRequiresItem(t *testing.T) {
	service := NewAssistantService(&fakeAIClient{text: "Dhokra is..."}, nil)

	_, err := service.GetTribalDetail(context.Background(), "")
	require.ErrorIs(t, err, utils.ErrMissingField)

	detail, err := service.GetTribalDetail(context.Background(), "Dhokra Art")
	require.NoError(t, err)
	assert.Equal(t, "Dhokra is...", detail)
}

func TestGenerateArt(t *testing.T) {
	service := NewAssistantService(&fakeAIClient{}, &fakeImageGenerator{image: "data:image/png;base64,QUJD"})

	image, err := service.GenerateArt(context.Background(), "Gond painting of a peacock")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,QUJD", image)
}

func TestGenerateArtWithoutProvider(t *testing.T) {
	service := NewAssistantService(&fakeAIClient{}, nil)

	_, err := service.GenerateArt(context.Background(), "a waterfall at dusk")
	require.ErrorIs(t, err, utils.ErrAIUnavailable)
}
