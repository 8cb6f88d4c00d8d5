package repositories

import (
	"context"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
)

// NftRepository defines NFT record data operations
type NftRepository interface {
	Create(ctx context.Context, nft *entities.NftData) error
	GetByMint(ctx context.Context, mint string) (*entities.NftData, error)
	GetByOwner(ctx context.Context, owner string, limit, offset int) ([]*entities.NftData, int, error)
	Update(ctx context.Context, nft *entities.NftData) error
	Delete(ctx context.Context, mint string) error
}

// NftListingRepository defines NFT listing data operations
type NftListingRepository interface {
	Create(ctx context.Context, listing *entities.NftListing) error
	GetByNftMint(ctx context.Context, nftMint string) (*entities.NftListing, error)
	ListActive(ctx context.Context, limit, offset int) ([]*entities.NftListing, int, error)
	Update(ctx context.Context, listing *entities.NftListing) error
}
