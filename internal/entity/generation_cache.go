package entity

import (
	"time"

	"gorm.io/gorm"
)

// GenerationCache - cached external-generator payloads (lesson sections,
// quiz questions, sandbox definitions) keyed by the composite cache key.
type GenerationCache struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CacheKey  string         `gorm:"uniqueIndex;size:255;not null" json:"cache_key"` // kind:scope:fingerprint
	Kind      string         `gorm:"size:20;not null;index" json:"kind"`             // lesson, quiz, sandbox
	Payload   string         `gorm:"type:text;not null" json:"payload"`              // raw JSON from the generator
	HitCount  int            `gorm:"default:0" json:"hit_count"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (GenerationCache) TableName() string {
	return "generation_caches"
}
