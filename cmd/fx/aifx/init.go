package aifx

import (
	"strings"

	"go.uber.org/fx"

	"cgtourism/pkg/ai"
	"cgtourism/pkg/config"
)

var Module = fx.Provide(
	provideAIClient, provideImageGenerator)

func provideAIClient(cfg *config.Config) (ai.Client, error) {
	if strings.ToLower(cfg.AIProvider) == "openai" {
		return ai.NewClient(cfg.AIProvider, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	return ai.NewClient(cfg.AIProvider, cfg.GeminiAPIKey, cfg.GeminiModel)
}

// Image generation always goes through OpenAI; Gemini text models cannot
// produce images. Art endpoints degrade to 502 when no key is configured.
func provideImageGenerator(cfg *config.Config) ai.ImageGenerator {
	if cfg.OpenAIAPIKey == "" {
		return nil
	}
	return ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
}
