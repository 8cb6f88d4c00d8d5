package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/entities"
	domainerrors "github.com/JupiterRain123/nft-fusion-marketplace/internal/domain/errors"
)

func TestProjectRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	createProjectTable(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := &entities.Project{
		ID:              uuid.New(),
		Authority:       "authority-1",
		ProjectID:       "cool-cats",
		ProjectTreasury: "treasury-1",
		RoyaltyWallet:   null.StringFrom("royalty-1"),
		RoyaltyBps:      500,
		LastActivityTs:  1700000000,
		IsActive:        true,
	}
	require.NoError(t, repo.Create(ctx, p))

	byID, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "cool-cats", byID.ProjectID)
	require.True(t, byID.HasRoyaltyWallet())

	byKey, err := repo.GetByProjectID(ctx, "cool-cats")
	require.NoError(t, err)
	require.Equal(t, p.ID, byKey.ID)

	byKey.LastActivityTs = 1700000500
	byKey.IsActive = false
	require.NoError(t, repo.Update(ctx, byKey))

	updated, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1700000500), updated.LastActivityTs)
	require.False(t, updated.IsActive)
}

func TestProjectRepository_ListActive(t *testing.T) {
	db := newTestDB(t)
	createProjectTable(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	active := &entities.Project{ID: uuid.New(), Authority: "a", ProjectID: "p1", ProjectTreasury: "t", LastActivityTs: 1, IsActive: true}
	inactive := &entities.Project{ID: uuid.New(), Authority: "a", ProjectID: "p2", ProjectTreasury: "t", LastActivityTs: 1, IsActive: false}
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))

	projects, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Equal(t, "p1", projects[0].ProjectID)
}

func TestProjectRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createProjectTable(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByProjectID(ctx, "missing")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.Project{ID: uuid.New(), Authority: "a", ProjectID: "x", ProjectTreasury: "t"})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
