package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
)

// LiquidityPoolRepository defines liquidity pool data operations
type LiquidityPoolRepository interface {
	Create(ctx context.Context, pool *entities.LiquidityPool) error
	GetByProjectID(ctx context.Context, projectID uuid.UUID) (*entities.LiquidityPool, error)
	Update(ctx context.Context, pool *entities.LiquidityPool) error
}
