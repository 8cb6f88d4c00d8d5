package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/logger"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/utils"
)

// MintUsecase orchestrates direct NFT minting with trait generation and
// NFT fusion.
type MintUsecase struct {
	collectionRepo  repositories.CollectionRepository
	traitTypeRepo   repositories.TraitTypeRepository
	traitConfigRepo repositories.CollectionTraitConfigRepository
	nftRepo         repositories.NftRepository
	nftTraitsRepo   repositories.NftTraitsRepository
	fusionRepo      repositories.FusionConfigRepository
	uow             repositories.UnitOfWork
	clock           clockwork.Clock
}

// NewMintUsecase creates a new mint usecase
func NewMintUsecase(
	collectionRepo repositories.CollectionRepository,
	traitTypeRepo repositories.TraitTypeRepository,
	traitConfigRepo repositories.CollectionTraitConfigRepository,
	nftRepo repositories.NftRepository,
	nftTraitsRepo repositories.NftTraitsRepository,
	fusionRepo repositories.FusionConfigRepository,
	uow repositories.UnitOfWork,
	clock clockwork.Clock,
) *MintUsecase {
	return &MintUsecase{
		collectionRepo:  collectionRepo,
		traitTypeRepo:   traitTypeRepo,
		traitConfigRepo: traitConfigRepo,
		nftRepo:         nftRepo,
		nftTraitsRepo:   nftTraitsRepo,
		fusionRepo:      fusionRepo,
		uow:             uow,
		clock:           clock,
	}
}

// MintNftInput carries the caller-validated mint parameters. Traits, when
// supplied, selects the NFT's traits by hand; otherwise they are drawn
// from the collection's weighted trait pools.
type MintNftInput struct {
	CollectionID uuid.UUID
	Slot         uint64
	Entropy      []byte
	Traits       []entities.SelectedTrait
	MetadataURI  string
}

// MintNft mints a level-zero NFT with traits either supplied by the caller
// or auto-generated from the derived seed, records the selection, and
// consumes trait supply.
func (u *MintUsecase) MintNft(ctx context.Context, caller string, in MintNftInput) (*entities.NftData, error) {
	collection, err := u.collectionRepo.GetByID(ctx, in.CollectionID)
	if err != nil {
		return nil, err
	}

	config, err := u.traitConfigRepo.GetByCollection(ctx, in.CollectionID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	traitTypes, err := u.traitTypeRepo.ListByCollection(ctx, in.CollectionID)
	if err != nil {
		return nil, err
	}

	var (
		selected      []entities.SelectedTrait
		seed          []byte
		autoGenerated bool
	)
	if len(in.Traits) > 0 {
		if err := ValidateManual(traitTypes, in.Traits); err != nil {
			return nil, err
		}
		selected = in.Traits
	} else {
		if config == nil || !config.AutoGenerationEnabled {
			return nil, domainerrors.ErrAutoGenerationDisabled
		}
		derived := DeriveSeed(in.Slot, collection.ID.String(), caller, in.Entropy)
		seed = derived[:]
		selected, _, err = AutoGenerate(traitTypes, seed)
		if err != nil {
			return nil, err
		}
		autoGenerated = true
	}

	metadataURI := in.MetadataURI
	if metadataURI == "" && config != nil && len(selected) > 0 {
		metadataURI, err = GenerateMetadataURI(config, selected, traitTypes)
		if err != nil {
			return nil, err
		}
	}
	if metadataURI == "" {
		metadataURI = collection.MetadataURI
	}
	if metadataURI == "" {
		return nil, domainerrors.ErrInvalidMetadataURI
	}

	mint, err := newMintAddress()
	if err != nil {
		return nil, err
	}
	nftID, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}
	traitsID, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}

	now := u.clock.Now().Unix()
	nft := &entities.NftData{
		ID:           nftID,
		Owner:        caller,
		CollectionID: collection.ID,
		Mint:         mint,
		MetadataURI:  metadataURI,
		MintedAt:     now,
		FusionLevel:  0,
		RarityScore:  RarityScore(traitTypes, selected),
	}
	nftTraits := &entities.NftTraits{
		ID:              traitsID,
		NftMint:         mint,
		CollectionID:    collection.ID,
		Traits:          selected,
		IsAutoGenerated: autoGenerated,
		GenerationSeed:  seed,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.nftRepo.Create(txCtx, nft); err != nil {
			return err
		}
		if err := u.nftTraitsRepo.Create(txCtx, nftTraits); err != nil {
			return err
		}
		return u.consumeSupply(txCtx, traitTypes, selected)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "nft minted",
		zap.String("mint", mint),
		zap.Bool("auto_generated", autoGenerated),
		zap.Uint16("rarity_score", nft.RarityScore))
	return nft, nil
}

// FuseNftsInput carries the caller-validated fusion parameters
type FuseNftsInput struct {
	CollectionID uuid.UUID
	ParentMints  []string
	Slot         uint64
	Entropy      []byte
}

// FuseNfts burns the caller's parent NFTs and mints a higher-level NFT
// whose rarity combines the freshly generated traits with the parents'
// scores. The parent count must fit the collection's fusion config.
func (u *MintUsecase) FuseNfts(ctx context.Context, caller string, in FuseNftsInput) (*entities.NftData, error) {
	fusionConfig, err := u.fusionRepo.GetByCollection(ctx, in.CollectionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrFusionNotActive
		}
		return nil, err
	}
	if !fusionConfig.IsActive {
		return nil, domainerrors.ErrFusionNotActive
	}

	if len(in.ParentMints) < int(fusionConfig.MinNfts) || len(in.ParentMints) > int(fusionConfig.MaxNfts) {
		return nil, domainerrors.ErrInvalidFusionInput
	}
	seen := make(map[string]bool, len(in.ParentMints))
	for _, mint := range in.ParentMints {
		if seen[mint] {
			return nil, domainerrors.ErrInvalidFusionInput
		}
		seen[mint] = true
	}

	collection, err := u.collectionRepo.GetByID(ctx, in.CollectionID)
	if err != nil {
		return nil, err
	}

	parents := make([]*entities.NftData, 0, len(in.ParentMints))
	parentScores := make([]uint16, 0, len(in.ParentMints))
	var maxLevel uint8
	for _, mint := range in.ParentMints {
		parent, err := u.nftRepo.GetByMint(ctx, mint)
		if err != nil {
			return nil, err
		}
		if parent.Owner != caller {
			return nil, domainerrors.ErrNotNftOwner
		}
		if parent.CollectionID != in.CollectionID {
			return nil, domainerrors.ErrInvalidFusionInput
		}
		parents = append(parents, parent)
		parentScores = append(parentScores, parent.RarityScore)
		if parent.FusionLevel > maxLevel {
			maxLevel = parent.FusionLevel
		}
	}
	newLevel := maxLevel + 1

	config, err := u.traitConfigRepo.GetByCollection(ctx, in.CollectionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrAutoGenerationDisabled
		}
		return nil, err
	}
	if !config.AutoGenerationEnabled {
		return nil, domainerrors.ErrAutoGenerationDisabled
	}

	traitTypes, err := u.traitTypeRepo.ListByCollection(ctx, in.CollectionID)
	if err != nil {
		return nil, err
	}

	derived := DeriveSeed(in.Slot, collection.ID.String(), caller, in.Entropy)
	seed := derived[:]
	selected, _, err := AutoGenerate(traitTypes, seed)
	if err != nil {
		return nil, err
	}

	metadataURI, err := GenerateMetadataURI(config, selected, traitTypes)
	if err != nil {
		return nil, err
	}
	if metadataURI == "" {
		metadataURI = collection.MetadataURI
	}
	if metadataURI == "" {
		return nil, domainerrors.ErrInvalidMetadataURI
	}

	mint, err := newMintAddress()
	if err != nil {
		return nil, err
	}
	nftID, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}
	traitsID, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}

	now := u.clock.Now().Unix()
	fused := &entities.NftData{
		ID:           nftID,
		Owner:        caller,
		CollectionID: collection.ID,
		Mint:         mint,
		MetadataURI:  metadataURI,
		MintedAt:     now,
		FusionLevel:  newLevel,
		ParentNfts:   in.ParentMints,
		RarityScore:  FusedRarity(traitTypes, selected, parentScores, newLevel),
	}
	if fusionConfig.CooldownPeriod > 0 {
		fused.CooldownEndTs = null.Int64From(now + fusionConfig.CooldownPeriod)
	}
	nftTraits := &entities.NftTraits{
		ID:              traitsID,
		NftMint:         mint,
		CollectionID:    collection.ID,
		Traits:          selected,
		IsAutoGenerated: true,
		GenerationSeed:  seed,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		for _, parent := range parents {
			if err := u.nftRepo.Delete(txCtx, parent.Mint); err != nil {
				return err
			}
		}
		if err := u.nftRepo.Create(txCtx, fused); err != nil {
			return err
		}
		if err := u.nftTraitsRepo.Create(txCtx, nftTraits); err != nil {
			return err
		}
		return u.consumeSupply(txCtx, traitTypes, selected)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "nfts fused",
		zap.String("mint", mint),
		zap.Int("parents", len(parents)),
		zap.Uint8("fusion_level", newLevel),
		zap.Uint16("rarity_score", fused.RarityScore))
	return fused, nil
}

// GetNftTraits returns the stored trait selection for an NFT
func (u *MintUsecase) GetNftTraits(ctx context.Context, nftMint string) (*entities.NftTraits, error) {
	return u.nftTraitsRepo.GetByNftMint(ctx, nftMint)
}

// consumeSupply bumps used supply for every selected value and persists
// the touched trait types. The increment must stay within available
// supply, which also catches duplicate pairs in a manual selection.
func (u *MintUsecase) consumeSupply(ctx context.Context, traitTypes []*entities.TraitType, selected []entities.SelectedTrait) error {
	touched := make(map[uuid.UUID]*entities.TraitType, len(selected))
	for _, sel := range selected {
		for _, tt := range traitTypes {
			if tt.Name != sel.TraitType {
				continue
			}
			for i := range tt.Values {
				if tt.Values[i].Name == sel.TraitValue {
					tt.Values[i].UsedSupply++
					if tt.Values[i].AvailableSupply.Valid && tt.Values[i].UsedSupply > tt.Values[i].AvailableSupply.Uint32 {
						return domainerrors.ErrTraitSupplyExceeded
					}
					touched[tt.ID] = tt
					break
				}
			}
			break
		}
	}
	for _, tt := range touched {
		if err := u.traitTypeRepo.Update(ctx, tt); err != nil {
			return err
		}
	}
	return nil
}
