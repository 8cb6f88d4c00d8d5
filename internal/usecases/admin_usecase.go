package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/volatiletech/null/v8"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/repositories"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/logger"
	"github.com/JupiterRain123/nft-fusion-marketplace/pkg/utils"
)

// AdminUsecase handles platform, project, collection, and fusion config
// administration.
type AdminUsecase struct {
	platformRepo   repositories.PlatformConfigRepository
	projectRepo    repositories.ProjectRepository
	collectionRepo repositories.CollectionRepository
	fusionRepo     repositories.FusionConfigRepository
	clock          clockwork.Clock
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	platformRepo repositories.PlatformConfigRepository,
	projectRepo repositories.ProjectRepository,
	collectionRepo repositories.CollectionRepository,
	fusionRepo repositories.FusionConfigRepository,
	clock clockwork.Clock,
) *AdminUsecase {
	return &AdminUsecase{
		platformRepo:   platformRepo,
		projectRepo:    projectRepo,
		collectionRepo: collectionRepo,
		fusionRepo:     fusionRepo,
		clock:          clock,
	}
}

// InitializePlatform creates the singleton platform configuration
func (u *AdminUsecase) InitializePlatform(ctx context.Context, authority string, feeBps uint16, treasury string) (*entities.PlatformConfig, error) {
	if feeBps >= MaxBps {
		return nil, domainerrors.ErrInvalidFeePercentage
	}
	if treasury == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	id, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}
	config := &entities.PlatformConfig{
		ID:               id,
		Authority:        authority,
		PlatformFeeBps:   feeBps,
		PlatformTreasury: treasury,
	}
	if err := u.platformRepo.Create(ctx, config); err != nil {
		return nil, err
	}

	logger.Info(ctx, "platform config initialized")
	return config, nil
}

// UpdatePlatformFee changes the platform cut. Authority only.
func (u *AdminUsecase) UpdatePlatformFee(ctx context.Context, caller string, feeBps uint16) (*entities.PlatformConfig, error) {
	if feeBps >= MaxBps {
		return nil, domainerrors.ErrInvalidFeePercentage
	}

	config, err := u.platformRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if config.Authority != caller {
		return nil, domainerrors.ErrUnauthorized
	}

	config.PlatformFeeBps = feeBps
	if err := u.platformRepo.Update(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}

// CreateProjectInput carries the caller-validated project parameters
type CreateProjectInput struct {
	ProjectID       string
	ProjectTreasury string
	RoyaltyWallet   null.String
	RoyaltyBps      uint16
}

// CreateProject registers a project under the calling authority. The
// combined platform and royalty cuts must leave room for a project share.
func (u *AdminUsecase) CreateProject(ctx context.Context, authority string, in CreateProjectInput) (*entities.Project, error) {
	if in.ProjectID == "" || in.ProjectTreasury == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	if in.RoyaltyBps >= MaxBps {
		return nil, domainerrors.ErrInvalidRoyaltyPercentage
	}
	platform, err := u.platformRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if platform.PlatformFeeBps+in.RoyaltyBps >= MaxBps {
		return nil, domainerrors.ErrInvalidRoyaltyPercentage
	}

	id, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}
	project := &entities.Project{
		ID:              id,
		Authority:       authority,
		ProjectID:       in.ProjectID,
		ProjectTreasury: in.ProjectTreasury,
		RoyaltyWallet:   in.RoyaltyWallet,
		RoyaltyBps:      in.RoyaltyBps,
		LastActivityTs:  u.clock.Now().Unix(),
		IsActive:        true,
	}
	if err := u.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	logger.Info(ctx, "project created")
	return project, nil
}

// CreateCollectionInput carries the caller-validated collection parameters
type CreateCollectionInput struct {
	ProjectID    string
	CollectionID string
	MetadataURI  string
	TokenMint    null.String
	IsCompressed bool
}

// CreateCollection adds a collection to the caller's project
func (u *AdminUsecase) CreateCollection(ctx context.Context, caller string, in CreateCollectionInput) (*entities.Collection, error) {
	if in.CollectionID == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	if in.MetadataURI == "" {
		return nil, domainerrors.ErrInvalidMetadataURI
	}

	project, err := u.projectRepo.GetByProjectID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Authority != caller {
		return nil, domainerrors.ErrUnauthorized
	}

	id, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}
	collection := &entities.Collection{
		ID:           id,
		ProjectID:    project.ID,
		CollectionID: in.CollectionID,
		MetadataURI:  in.MetadataURI,
		TokenMint:    in.TokenMint,
		IsCompressed: in.IsCompressed,
	}
	if err := u.collectionRepo.Create(ctx, collection); err != nil {
		return nil, err
	}

	logger.Info(ctx, "collection created")
	return collection, nil
}

// CreateFusionConfigInput carries the caller-validated fusion parameters
type CreateFusionConfigInput struct {
	CollectionID    uuid.UUID
	MinNfts         uint8
	MaxNfts         uint8
	BaseSuccessRate uint8
	BurnPercent     uint8
	CooldownPeriod  int64
}

// CreateFusionConfig enables fusion for a collection
func (u *AdminUsecase) CreateFusionConfig(ctx context.Context, caller string, in CreateFusionConfigInput) (*entities.FusionConfig, error) {
	if in.MinNfts < 2 || in.MaxNfts < in.MinNfts || in.BaseSuccessRate > 100 || in.BurnPercent > 100 {
		return nil, domainerrors.ErrInvalidInput
	}

	collection, err := u.collectionRepo.GetByID(ctx, in.CollectionID)
	if err != nil {
		return nil, err
	}
	project, err := u.projectRepo.GetByID(ctx, collection.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Authority != caller {
		return nil, domainerrors.ErrUnauthorized
	}

	id, err := utils.GenerateUUIDv7()
	if err != nil {
		return nil, err
	}
	config := &entities.FusionConfig{
		ID:              id,
		CollectionID:    in.CollectionID,
		MinNfts:         in.MinNfts,
		MaxNfts:         in.MaxNfts,
		BaseSuccessRate: in.BaseSuccessRate,
		BurnPercent:     in.BurnPercent,
		CooldownPeriod:  in.CooldownPeriod,
		IsActive:        true,
	}
	if err := u.fusionRepo.Create(ctx, config); err != nil {
		return nil, err
	}
	return config, nil
}
