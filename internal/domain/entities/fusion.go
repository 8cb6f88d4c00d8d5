package entities

import (
	"time"

	"github.com/google/uuid"
)

// FusionConfig holds a collection's fusion parameters
type FusionConfig struct {
	ID              uuid.UUID `json:"id"`
	CollectionID    uuid.UUID `json:"collectionId"`
	MinNfts         uint8     `json:"minNfts"`
	MaxNfts         uint8     `json:"maxNfts"`
	BaseSuccessRate uint8     `json:"baseSuccessRate"`
	BurnPercent     uint8     `json:"burnPercent"`
	CooldownPeriod  int64     `json:"cooldownPeriod"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
