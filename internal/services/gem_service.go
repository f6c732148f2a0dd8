package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"cgtourism/internal/models/db_models"
	"cgtourism/internal/models/request_models"
	"cgtourism/internal/repositories"
	"cgtourism/pkg/ai"
	"cgtourism/pkg/utils"
)

// enrichmentTimeout bounds the best-effort AI call so a slow upstream
// cannot stall gem submissions.
const enrichmentTimeout = 10 * time.Second

// GemEnricher is the slice of the AI client the gem service needs.
type GemEnricher interface {
	EnrichGem(ctx context.Context, name, description string) (*ai.Enrichment, error)
}

type GemServiceInterface interface {
	CreateGem(ctx context.Context, req request_models.CreateGemRequest) (*db_models.Gem, error)
	ListGems(ctx context.Context) ([]db_models.Gem, error)
}

type GemService struct {
	gemRepo  repositories.GemRepositoryInterface
	enricher GemEnricher
}

// NewGemService builds the gem service. The enricher may be nil, in which
// case gems are stored with user-supplied fields only.
func NewGemService(gemRepo repositories.GemRepositoryInterface, enricher GemEnricher) GemServiceInterface {
	return &GemService{
		gemRepo:  gemRepo,
		enricher: enricher,
	}
}

func (s *GemService) CreateGem(ctx context.Context, req request_models.CreateGemRequest) (*db_models.Gem, error) {
	if err := validateGemRequest(req); err != nil {
		return nil, err
	}

	gem := &db_models.Gem{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		SubmittedBy: strings.TrimSpace(req.SubmittedBy),
		Tags:        NormalizeTags(req.Tags),
	}

	// Phase 1: best-effort enrichment. Any failure degrades to a gem
	// without AI fields, never to a rejected submission.
	if enrichment := s.tryEnrich(ctx, gem.Name, gem.Description); enrichment != nil {
		gem.AITags = enrichment.Tags
		gem.AIInsight = enrichment.Insight
	}

	// Phase 2: unconditional persistence.
	if err := s.gemRepo.CreateGem(ctx, gem); err != nil {
		log.Printf("Failed to persist gem %q: %v", gem.Name, err)
		return nil, utils.ErrDatabaseError
	}

	return gem, nil
}

func (s *GemService) ListGems(ctx context.Context) ([]db_models.Gem, error) {
	gems, err := s.gemRepo.ListGems(ctx)
	if err != nil {
		log.Printf("Failed to list gems: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if gems == nil {
		gems = []db_models.Gem{}
	}
	return gems, nil
}

func (s *GemService) tryEnrich(ctx context.Context, name, description string) *ai.Enrichment {
	if s.enricher == nil {
		return nil
	}

	enrichCtx, cancel := context.WithTimeout(ctx, enrichmentTimeout)
	defer cancel()

	enrichment, err := s.enricher.EnrichGem(enrichCtx, name, description)
	if err != nil {
		log.Printf("Enrichment failed for gem %q: %v", name, err)
		return nil
	}
	return enrichment
}

func validateGemRequest(req request_models.CreateGemRequest) error {
	required := []struct {
		field string
		value string
	}{
		{"name", req.Name},
		{"description", req.Description},
		{"imageUrl", req.ImageURL},
		{"submittedBy", req.SubmittedBy},
	}

	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", utils.ErrMissingField, f.field)
		}
	}
	return nil
}

// NormalizeTags trims each tag and drops empties. Order and case are kept
// as submitted.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		normalized = append(normalized, tag)
	}
	return normalized
}
