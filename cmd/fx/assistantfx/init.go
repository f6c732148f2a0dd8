package assistantfx

import (
	"go.uber.org/fx"

	"cgtourism/internal/api/controllers"
	"cgtourism/internal/services"
	"cgtourism/pkg/ai"
)

var Module = fx.Provide(
	provideAssistantService, provideAssistantController,
)

func provideAssistantService(aiClient ai.Client, images ai.ImageGenerator) services.AssistantServiceInterface {
	return services.NewAssistantService(aiClient, images)
}

func provideAssistantController(assistantService services.AssistantServiceInterface) *controllers.AssistantController {
	return controllers.NewAssistantController(assistantService)
}
