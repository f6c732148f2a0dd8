package contentfx

import (
	"go.uber.org/fx"

	"cgtourism/internal/api/controllers"
	"cgtourism/internal/services"
)

var Module = fx.Provide(
	provideContentService, provideContentController,
)

func provideContentService() services.ContentServiceInterface {
	return services.NewContentService()
}

func provideContentController(contentService services.ContentServiceInterface) *controllers.ContentController {
	return controllers.NewContentController(contentService)
}
