package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
)

// FusionConfigRepository defines fusion config data operations
type FusionConfigRepository interface {
	Create(ctx context.Context, config *entities.FusionConfig) error
	GetByCollection(ctx context.Context, collectionID uuid.UUID) (*entities.FusionConfig, error)
	Update(ctx context.Context, config *entities.FusionConfig) error
}
