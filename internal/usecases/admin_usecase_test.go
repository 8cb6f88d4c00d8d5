package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
	"github.com/JupiterRain123/nft-fusion-marketplace/internal/usecases"
)

func TestAdminUsecase_InitializePlatform(t *testing.T) {
	mockPlatformRepo := new(MockPlatformConfigRepository)
	uc := usecases.NewAdminUsecase(mockPlatformRepo, nil, nil, nil, testClock())

	mockPlatformRepo.On("Create", context.Background(), mock.Anything).Return(nil).Once()

	config, err := uc.InitializePlatform(context.Background(), "platform", 200, "treasury")
	assert.NoError(t, err)
	assert.Equal(t, "platform", config.Authority)
	assert.Equal(t, uint16(200), config.PlatformFeeBps)
	assert.Equal(t, "treasury", config.PlatformTreasury)
}

func TestAdminUsecase_InitializePlatform_InvalidInput(t *testing.T) {
	uc := usecases.NewAdminUsecase(nil, nil, nil, nil, testClock())

	_, err := uc.InitializePlatform(context.Background(), "platform", 10_000, "treasury")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFeePercentage)

	_, err = uc.InitializePlatform(context.Background(), "platform", 200, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestAdminUsecase_UpdatePlatformFee(t *testing.T) {
	mockPlatformRepo := new(MockPlatformConfigRepository)
	uc := usecases.NewAdminUsecase(mockPlatformRepo, nil, nil, nil, testClock())

	config := &entities.PlatformConfig{Authority: "platform", PlatformFeeBps: 200}
	ctx := context.Background()
	mockPlatformRepo.On("Get", ctx).Return(config, nil).Once()
	mockPlatformRepo.On("Update", ctx, config).Return(nil).Once()

	updated, err := uc.UpdatePlatformFee(ctx, "platform", 350)
	assert.NoError(t, err)
	assert.Equal(t, uint16(350), updated.PlatformFeeBps)
}

func TestAdminUsecase_UpdatePlatformFee_NotAuthority(t *testing.T) {
	mockPlatformRepo := new(MockPlatformConfigRepository)
	uc := usecases.NewAdminUsecase(mockPlatformRepo, nil, nil, nil, testClock())

	config := &entities.PlatformConfig{Authority: "platform"}
	mockPlatformRepo.On("Get", context.Background()).Return(config, nil).Once()

	_, err := uc.UpdatePlatformFee(context.Background(), "intruder", 350)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAdminUsecase_CreateProject(t *testing.T) {
	mockPlatformRepo := new(MockPlatformConfigRepository)
	mockProjectRepo := new(MockProjectRepository)
	uc := usecases.NewAdminUsecase(mockPlatformRepo, mockProjectRepo, nil, nil, testClock())

	platform := &entities.PlatformConfig{Authority: "platform", PlatformFeeBps: 200}
	ctx := context.Background()
	mockPlatformRepo.On("Get", ctx).Return(platform, nil).Once()
	mockProjectRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	project, err := uc.CreateProject(ctx, "auth-1", usecases.CreateProjectInput{
		ProjectID:       "proj-1",
		ProjectTreasury: "proj-treasury",
		RoyaltyWallet:   null.StringFrom("royalty-wallet"),
		RoyaltyBps:      500,
	})
	assert.NoError(t, err)
	assert.Equal(t, "auth-1", project.Authority)
	assert.True(t, project.IsActive)
	assert.Equal(t, testNow, project.LastActivityTs)
	assert.True(t, project.HasRoyaltyWallet())
}

func TestAdminUsecase_CreateProject_RoyaltyTooHigh(t *testing.T) {
	mockPlatformRepo := new(MockPlatformConfigRepository)
	uc := usecases.NewAdminUsecase(mockPlatformRepo, nil, nil, nil, testClock())

	_, err := uc.CreateProject(context.Background(), "auth-1", usecases.CreateProjectInput{
		ProjectID:       "proj-1",
		ProjectTreasury: "proj-treasury",
		RoyaltyBps:      10_000,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRoyaltyPercentage)

	// royalty alone fits but platform + royalty leaves no project share
	platform := &entities.PlatformConfig{Authority: "platform", PlatformFeeBps: 5_000}
	mockPlatformRepo.On("Get", context.Background()).Return(platform, nil).Once()

	_, err = uc.CreateProject(context.Background(), "auth-1", usecases.CreateProjectInput{
		ProjectID:       "proj-1",
		ProjectTreasury: "proj-treasury",
		RoyaltyBps:      5_000,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRoyaltyPercentage)
}

func TestAdminUsecase_CreateCollection(t *testing.T) {
	mockProjectRepo := new(MockProjectRepository)
	mockCollectionRepo := new(MockCollectionRepository)
	uc := usecases.NewAdminUsecase(nil, mockProjectRepo, mockCollectionRepo, nil, testClock())

	project := &entities.Project{ID: uuid.New(), Authority: "auth-1", ProjectID: "proj-1"}
	ctx := context.Background()
	mockProjectRepo.On("GetByProjectID", ctx, "proj-1").Return(project, nil).Once()
	mockCollectionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	collection, err := uc.CreateCollection(ctx, "auth-1", usecases.CreateCollectionInput{
		ProjectID:    "proj-1",
		CollectionID: "col-1",
		MetadataURI:  "ipfs://collection",
		TokenMint:    null.StringFrom("mint-1"),
	})
	assert.NoError(t, err)
	assert.Equal(t, project.ID, collection.ProjectID)
	assert.Equal(t, "col-1", collection.CollectionID)
}

func TestAdminUsecase_CreateCollection_EmptyMetadataURI(t *testing.T) {
	uc := usecases.NewAdminUsecase(nil, nil, nil, nil, testClock())

	_, err := uc.CreateCollection(context.Background(), "auth-1", usecases.CreateCollectionInput{
		ProjectID:    "proj-1",
		CollectionID: "col-1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMetadataURI)
}

func TestAdminUsecase_CreateCollection_NotAuthority(t *testing.T) {
	mockProjectRepo := new(MockProjectRepository)
	uc := usecases.NewAdminUsecase(nil, mockProjectRepo, nil, nil, testClock())

	project := &entities.Project{ID: uuid.New(), Authority: "auth-1", ProjectID: "proj-1"}
	mockProjectRepo.On("GetByProjectID", context.Background(), "proj-1").Return(project, nil).Once()

	_, err := uc.CreateCollection(context.Background(), "someone-else", usecases.CreateCollectionInput{
		ProjectID:    "proj-1",
		CollectionID: "col-1",
		MetadataURI:  "ipfs://collection",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAdminUsecase_CreateFusionConfig(t *testing.T) {
	mockProjectRepo := new(MockProjectRepository)
	mockCollectionRepo := new(MockCollectionRepository)
	mockFusionRepo := new(MockFusionConfigRepository)
	uc := usecases.NewAdminUsecase(nil, mockProjectRepo, mockCollectionRepo, mockFusionRepo, testClock())

	project := &entities.Project{ID: uuid.New(), Authority: "auth-1"}
	collection := &entities.Collection{ID: uuid.New(), ProjectID: project.ID}

	ctx := context.Background()
	mockCollectionRepo.On("GetByID", ctx, collection.ID).Return(collection, nil).Once()
	mockProjectRepo.On("GetByID", ctx, project.ID).Return(project, nil).Once()
	mockFusionRepo.On("Create", ctx, mock.Anything).Return(nil).Once()

	config, err := uc.CreateFusionConfig(ctx, "auth-1", usecases.CreateFusionConfigInput{
		CollectionID:    collection.ID,
		MinNfts:         2,
		MaxNfts:         5,
		BaseSuccessRate: 80,
		BurnPercent:     100,
		CooldownPeriod:  3_600,
	})
	assert.NoError(t, err)
	assert.True(t, config.IsActive)
	assert.Equal(t, uint8(2), config.MinNfts)
}

func TestAdminUsecase_CreateFusionConfig_InvalidBounds(t *testing.T) {
	uc := usecases.NewAdminUsecase(nil, nil, nil, nil, testClock())

	_, err := uc.CreateFusionConfig(context.Background(), "auth-1", usecases.CreateFusionConfigInput{
		CollectionID: uuid.New(),
		MinNfts:      1,
		MaxNfts:      5,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = uc.CreateFusionConfig(context.Background(), "auth-1", usecases.CreateFusionConfigInput{
		CollectionID: uuid.New(),
		MinNfts:      4,
		MaxNfts:      3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
