package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
)

// TraitTypeRepository defines trait type data operations.
// ListByCollection returns trait types ordered by their declared position.
type TraitTypeRepository interface {
	Create(ctx context.Context, traitType *entities.TraitType) error
	GetByName(ctx context.Context, collectionID uuid.UUID, name string) (*entities.TraitType, error)
	ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]*entities.TraitType, error)
	Update(ctx context.Context, traitType *entities.TraitType) error
}

// CollectionTraitConfigRepository defines trait config data operations
type CollectionTraitConfigRepository interface {
	Create(ctx context.Context, config *entities.CollectionTraitConfig) error
	GetByCollection(ctx context.Context, collectionID uuid.UUID) (*entities.CollectionTraitConfig, error)
	Update(ctx context.Context, config *entities.CollectionTraitConfig) error
}

// NftTraitsRepository defines NFT trait selection data operations
type NftTraitsRepository interface {
	Create(ctx context.Context, traits *entities.NftTraits) error
	GetByNftMint(ctx context.Context, nftMint string) (*entities.NftTraits, error)
}
