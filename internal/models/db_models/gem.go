package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Gem is a community-submitted point of interest. Rows are created once and
// never updated or deleted.
type Gem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Location    string         `json:"location,omitempty"`
	ImageURL    string         `gorm:"type:text;not null" json:"imageUrl"`
	SubmittedBy string         `gorm:"not null" json:"submittedBy"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	AITags      pq.StringArray `gorm:"type:text[];column:ai_tags" json:"aiTags,omitempty"`
	AIInsight   string         `gorm:"type:text;column:ai_insight" json:"aiInsight,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

func (g *Gem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
