package gemsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cgtourism/internal/api/controllers"
	"cgtourism/internal/repositories"
	"cgtourism/internal/services"
	"cgtourism/pkg/ai"
)

var Module = fx.Provide(
	provideGemRepo, provideGemService, provideGemsController,
)

func provideGemRepo(db *gorm.DB) repositories.GemRepositoryInterface {
	return repositories.NewGemRepository(db)
}

func provideGemService(gemRepo repositories.GemRepositoryInterface, aiClient ai.Client) services.GemServiceInterface {
	return services.NewGemService(gemRepo, aiClient)
}

func provideGemsController(gemService services.GemServiceInterface) *controllers.GemsController {
	return controllers.NewGemsController(gemService)
}
