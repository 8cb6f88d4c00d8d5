package repositories

import (
	"context"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
)

// TokenEscrowRepository defines token escrow data operations
type TokenEscrowRepository interface {
	Create(ctx context.Context, escrow *entities.TokenEscrow) error
	GetByNftMint(ctx context.Context, nftMint string) (*entities.TokenEscrow, error)
	Update(ctx context.Context, escrow *entities.TokenEscrow) error
	Delete(ctx context.Context, nftMint string) error
}
