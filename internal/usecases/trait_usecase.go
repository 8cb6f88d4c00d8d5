package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/logger"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/utils"
)

// TraitUsecase handles trait type and trait config administration
type TraitUsecase struct {
	projectRepo     repositories.ProjectRepository
	collectionRepo  repositories.CollectionRepository
	traitTypeRepo   repositories.TraitTypeRepository
	traitConfigRepo repositories.CollectionTraitConfigRepository
	clock           clockwork.Clock
}

// NewTraitUsecase creates a new trait usecase
func NewTraitUsecase(
	projectRepo repositories.ProjectRepository,
	collectionRepo repositories.CollectionRepository,
	traitTypeRepo repositories.TraitTypeRepository,
	traitConfigRepo repositories.CollectionTraitConfigRepository,
	clock clockwork.Clock,
) *TraitUsecase {
	return &TraitUsecase{
		projectRepo:     projectRepo,
		collectionRepo:  collectionRepo,
		traitTypeRepo:   traitTypeRepo,
		traitConfigRepo: traitConfigRepo,
		clock:           clock,
	}
}

// CreateTraitTypeInput carries the caller-validated trait type parameters
type CreateTraitTypeInput struct {
	CollectionID uuid.UUID
	Name         string
	IsRequired   bool
	Position     int
	Values       []entities.TraitValue
}

// CreateTraitType registers a trait type with its ordered value pool.
// The value list must be non-empty and every value needs a name.
func (u *TraitUsecase) CreateTraitType(ctx context.Context, caller string, in CreateTraitTypeInput) (*entities.TraitType, error) {
	if in.Name == "" || len(in.Values) == 0 {
		return nil, domainerrors.ErrInvalidTraitConfig
	}
	for i := range in.Values {
		if in.Values[i].Name == "" {
			return nil, domainerrors.ErrInvalidTraitConfig
		}
		if in.Values[i].AvailableSupply.Valid && in.Values[i].UsedSupply > in.Values[i].AvailableSupply.Uint32 {
			return nil, domainerrors.ErrInvalidTraitConfig
		}
	}

	if err := u.requireCollectionAuthority(ctx, caller, in.CollectionID); err != nil {
		return nil, err
	}

	id, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}
	traitType := &entities.TraitType{
		ID:           id,
		CollectionID: in.CollectionID,
		Name:         in.Name,
		IsRequired:   in.IsRequired,
		Position:     in.Position,
		Values:       in.Values,
	}
	if err := u.traitTypeRepo.Create(ctx, traitType); err != nil {
		return nil, err
	}

	logger.Info(ctx, "trait type created")
	return traitType, nil
}

// CreateTraitConfigInput carries the caller-validated trait config parameters
type CreateTraitConfigInput struct {
	CollectionID          uuid.UUID
	BaseURI               string
	AutoGenerationEnabled bool
	MetadataFormat        entities.MetadataFormat
}

// CreateTraitConfig stores the collection's trait generation settings
func (u *TraitUsecase) CreateTraitConfig(ctx context.Context, caller string, in CreateTraitConfigInput) (*entities.CollectionTraitConfig, error) {
	if in.BaseURI == "" {
		return nil, domainerrors.ErrInvalidMetadataURI
	}
	switch in.MetadataFormat {
	case entities.MetadataFormatStandardJson, entities.MetadataFormatCompressedJson, entities.MetadataFormatCustom:
	default:
		return nil, domainerrors.ErrInvalidInput
	}

	if err := u.requireCollectionAuthority(ctx, caller, in.CollectionID); err != nil {
		return nil, err
	}

	id, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}
	config := &entities.CollectionTraitConfig{
		ID:                    id,
		CollectionID:          in.CollectionID,
		BaseURI:               in.BaseURI,
		AutoGenerationEnabled: in.AutoGenerationEnabled,
		MetadataFormat:        in.MetadataFormat,
	}
	if err := u.traitConfigRepo.Create(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}

// ListTraitTypes returns the collection's trait types in declaration order
func (u *TraitUsecase) ListTraitTypes(ctx context.Context, collectionID uuid.UUID) ([]*entities.TraitType, error) {
	return u.traitTypeRepo.ListByCollection(ctx, collectionID)
}

func (u *TraitUsecase) requireCollectionAuthority(ctx context.Context, caller string, collectionID uuid.UUID) error {
	collection, err := u.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		return err
	}
	project, err := u.projectRepo.GetByID(ctx, collection.ProjectID)
	if err != nil {
		return err
	}
	if project.Authority != caller {
		return domainerrors.ErrUnauthorized
	}
	return nil
}
