package repositories

import (
	"context"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
)

// PlatformConfigRepository defines platform config data operations
type PlatformConfigRepository interface {
	Create(ctx context.Context, config *entities.PlatformConfig) error
	Get(ctx context.Context) (*entities.PlatformConfig, error)
	Update(ctx context.Context, config *entities.PlatformConfig) error
}
