package repositories

import (
	"context"

	"gorm.io/gorm"

	"cgtourism/internal/models/db_models"
)

type GemRepositoryInterface interface {
	CreateGem(ctx context.Context, gem *db_models.Gem) error
	ListGems(ctx context.Context) ([]db_models.Gem, error)
}

type GemRepository struct {
	db *gorm.DB
}

func NewGemRepository(db *gorm.DB) *GemRepository {
	return &GemRepository{db: db}
}

func (r *GemRepository) CreateGem(ctx context.Context, gem *db_models.Gem) error {
	return r.db.WithContext(ctx).Create(gem).Error
}

// ListGems returns the whole collection newest-first. The id is a secondary
// sort so rows created within the same timestamp keep a stable order.
func (r *GemRepository) ListGems(ctx context.Context) ([]db_models.Gem, error) {
	var gems []db_models.Gem
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&gems).Error
	return gems, err
}
