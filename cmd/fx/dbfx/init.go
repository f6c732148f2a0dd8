package dbfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"cgtourism/internal/infra"
	"cgtourism/pkg/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg.PostgresURL)
}
