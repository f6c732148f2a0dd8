package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

const maxEnrichmentTags = 5

// Enrichment is the optional AI augmentation attached to a community gem.
type Enrichment struct {
	Tags    []string `json:"tags"`
	Insight string   `json:"insight"`
}

// ChatSession is a stateful conversation. A session is owned by a single
// caller and is not safe for concurrent use.
type ChatSession interface {
	Send(ctx context.Context, message string) (string, error)
}

type Client interface {
	EnrichGem(ctx context.Context, name, description string) (*Enrichment, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
	NewChatSession(systemInstruction string) ChatSession
	Close() error
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// NewClient Factory function to create either an OpenAI or Gemini client based on config
func NewClient(provider, apiKey, model string) (Client, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	case "gemini":
		return NewGeminiClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

func enrichmentPrompt(name, description string) string {
	return fmt.Sprintf(`You are a travel content curator for Chhattisgarh, India.
A traveler submitted a hidden gem. Return **JSON only** matching this schema exactly:
{"tags":["short lowercase tag", "..."],"insight":"one engaging sentence for tourists"}

Rules:
- At most %d tags, each 1-2 words, lowercase.
- "insight" is exactly one sentence.

Name: %s
Description: %s

Return JSON only. No comments, no markdown.`, maxEnrichmentTags, name, description)
}

func parseEnrichment(content string) (*Enrichment, error) {
	if !json.Valid([]byte(content)) {
		return nil, fmt.Errorf("not valid json")
	}

	var enrichment Enrichment
	if err := json.Unmarshal([]byte(content), &enrichment); err != nil {
		return nil, fmt.Errorf("unmarshal enrichment: %w", err)
	}

	tags := make([]string, 0, len(enrichment.Tags))
	for _, tag := range enrichment.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
		if len(tags) == maxEnrichmentTags {
			break
		}
	}
	enrichment.Tags = tags
	enrichment.Insight = strings.TrimSpace(enrichment.Insight)

	if len(enrichment.Tags) == 0 && enrichment.Insight == "" {
		return nil, fmt.Errorf("empty enrichment")
	}
	return &enrichment, nil
}
